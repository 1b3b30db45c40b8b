package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/montessori/internal/cli/formatter"
	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/stats"
	"github.com/spf13/cobra"
)

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "student",
		Aliases: []string{"students"},
		Short:   "Manage students",
	}

	cmd.AddCommand(
		newStudentAddCmd(app),
		newStudentListCmd(app),
		newStudentShowCmd(app),
		newStudentUpdateCmd(app),
		newStudentRemoveCmd(app),
	)

	return cmd
}

func newStudentAddCmd(app *App) *cobra.Command {
	var (
		d      domain.StudentDraft
		gender genderFlag
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Enroll a new student",
		RunE: func(cmd *cobra.Command, args []string) error {
			d.Gender = gender.gender
			if d.Name == "" && app.interactive() {
				age := ""
				if d.Age > 0 {
					age = strconv.Itoa(d.Age)
				}
				if err := studentForm(&d, &age).Run(); err != nil {
					return err
				}
				d.Age, _ = strconv.Atoi(age)
			}
			if err := d.Validate(); err != nil {
				return err
			}

			s, err := app.Students.AddStudent(context.Background(), d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added student %s %s\n", formatter.Bold(s.Name), formatter.Dim(s.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&d.Name, "name", "", "Student name")
	cmd.Flags().Var(&gender, "gender", "Gender: male or female (男/女)")
	cmd.Flags().IntVar(&d.Age, "age", 0, "Age in years (1-12)")
	cmd.Flags().StringVar(&d.ParentContact, "contact", "", "Parent contact")
	cmd.Flags().StringVar(&d.Notes, "notes", "", "Notes")

	return cmd
}

func newStudentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List students with overall progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			students := app.Students.Students()
			if len(students) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No students yet.")
				return nil
			}

			rows := make([]formatter.StudentRow, len(students))
			for i, s := range students {
				rows[i] = formatter.StudentRow{Student: s, Progress: app.Progress.GetStudentProgress(s.ID)}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudentList(rows))
			return nil
		},
	}
}

func newStudentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show STUDENT",
		Short: "Show a student's profile and progress by area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStudent(app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudentDetail(studentDetail(app, s)))
			return nil
		},
	}
}

func studentDetail(app *App, s domain.Student) formatter.StudentDetailData {
	snap := app.Snapshots.Snapshot()
	works := make(map[domain.Area][]formatter.WorkLine)
	for _, w := range snap.Works {
		line := formatter.WorkLine{Work: w, Status: domain.StatusNotStarted}
		if rec, ok := snap.Record(s.ID, w.ID); ok {
			line.Status = rec.Status
			line.UpdatedAt = rec.UpdatedAt
		}
		works[w.Area] = append(works[w.Area], line)
	}
	return formatter.StudentDetailData{
		Student:   s,
		Progress:  app.Progress.GetStudentProgress(s.ID),
		Breakdown: stats.StudentBreakdown(snap, s.ID),
		Works:     works,
		Now:       app.now(),
	}
}

func newStudentUpdateCmd(app *App) *cobra.Command {
	var (
		name, contact, notes string
		age                  int
		gender               genderFlag
	)

	cmd := &cobra.Command{
		Use:   "update STUDENT",
		Short: "Update a student's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStudent(app, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				s.Name = name
			}
			if flags.Changed("gender") {
				s.Gender = gender.gender
			}
			if flags.Changed("age") {
				s.Age = age
			}
			if flags.Changed("contact") {
				s.ParentContact = contact
			}
			if flags.Changed("notes") {
				s.Notes = notes
			}
			if err := s.Draft().Validate(); err != nil {
				return err
			}

			if err := app.Students.UpdateStudent(context.Background(), s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated student %s\n", formatter.Bold(s.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().Var(&gender, "gender", "New gender")
	cmd.Flags().IntVar(&age, "age", 0, "New age")
	cmd.Flags().StringVar(&contact, "contact", "", "New parent contact")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")

	return cmd
}

func newStudentRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove STUDENT",
		Aliases: []string{"rm"},
		Short:   "Remove a student and all of their progress",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStudent(app, args[0])
			if err != nil {
				return err
			}

			sp := app.Progress.GetStudentProgress(s.ID)
			records := sp.CompletedCount + sp.InProgressCount
			ok, err := app.confirm(fmt.Sprintf("Remove %s and %d progress record(s)?", s.Name, records), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}

			if err := app.Students.DeleteStudent(context.Background(), s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed student %s\n", formatter.Bold(s.Name))
			return nil
		},
	}

	yesFlag(cmd.Flags(), &yes)

	return cmd
}
