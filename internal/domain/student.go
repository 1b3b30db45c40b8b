package domain

// Student is a child enrolled in the classroom.
type Student struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Gender        Gender `json:"gender"`
	Age           int    `json:"age"`
	ParentContact string `json:"parentContact,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// StudentDraft carries the fields of a student that does not have an id yet.
type StudentDraft struct {
	Name          string `json:"name" validate:"notblank"`
	Gender        Gender `json:"gender" validate:"gender"`
	Age           int    `json:"age" validate:"min=1,max=12"`
	ParentContact string `json:"parentContact,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// WithID materializes the draft as a Student.
func (d StudentDraft) WithID(id string) Student {
	return Student{
		ID:            id,
		Name:          d.Name,
		Gender:        d.Gender,
		Age:           d.Age,
		ParentContact: d.ParentContact,
		Notes:         d.Notes,
	}
}

// Draft strips the id, mainly so updates can be validated like new records.
func (s Student) Draft() StudentDraft {
	return StudentDraft{
		Name:          s.Name,
		Gender:        s.Gender,
		Age:           s.Age,
		ParentContact: s.ParentContact,
		Notes:         s.Notes,
	}
}

// Initial returns the first rune of the name, used as an avatar.
func (s Student) Initial() string {
	for _, r := range s.Name {
		return string(r)
	}
	return "?"
}
