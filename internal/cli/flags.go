package cli

import (
	"strings"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// areaFlag parses --area values with domain.ParseArea, so both the label
// ("数学区") and the key ("math") are accepted.
type areaFlag struct {
	area domain.Area
}

var _ pflag.Value = (*areaFlag)(nil)

func (f *areaFlag) String() string {
	if f.area == "" {
		return ""
	}
	return f.area.Key()
}

func (f *areaFlag) Set(s string) error {
	a, err := domain.ParseArea(s)
	if err != nil {
		return err
	}
	f.area = a
	return nil
}

func (f *areaFlag) Type() string { return "area" }

// addAreaFlag registers --area with shell completion of the area keys.
func addAreaFlag(cmd *cobra.Command, f *areaFlag, usage string) {
	cmd.Flags().Var(f, "area", usage+" ("+strings.Join(domain.AreaKeys(), ", ")+")")
	_ = cmd.RegisterFlagCompletionFunc("area", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		keys := domain.AreaKeys()
		for i, k := range keys {
			keys[i] = strings.ToLower(k)
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	})
}

// genderFlag parses --gender values with domain.ParseGender.
type genderFlag struct {
	gender domain.Gender
}

var _ pflag.Value = (*genderFlag)(nil)

func (f *genderFlag) String() string { return string(f.gender) }

func (f *genderFlag) Set(s string) error {
	g, err := domain.ParseGender(s)
	if err != nil {
		return err
	}
	f.gender = g
	return nil
}

func (f *genderFlag) Type() string { return "gender" }

// yesFlag registers --yes on destructive commands.
func yesFlag(fs *pflag.FlagSet, yes *bool) {
	fs.BoolVarP(yes, "yes", "y", false, "Skip the confirmation prompt")
}
