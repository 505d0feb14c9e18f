package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/DowelMap/internal/model"
	"github.com/piwi3910/DowelMap/internal/project"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage the G-code profiles used for drilling programs",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadStoredProfiles(); err != nil {
			return err
		}
		printProfiles(cmd.OutOrStdout())
		return nil
	},
}

var profilesImportCmd = &cobra.Command{
	Use:   "import [profile file]",
	Short: "Add a shared profile to the custom profiles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stored, err := loadStoredProfiles()
		if err != nil {
			return err
		}
		p, err := project.ImportProfile(args[0])
		if err != nil {
			return err
		}
		if stored, err = addProfile(stored, p); err != nil {
			return err
		}
		if err := project.SaveCustomProfilesToDefault(stored); err != nil {
			return err
		}
		log.Info().Str("profile", p.Name).Msg("profile imported")
		return nil
	},
}

var profilesExportCmd = &cobra.Command{
	Use:   "export [name] [profile file]",
	Short: "Write a profile to a file for sharing",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadStoredProfiles(); err != nil {
			return err
		}
		p, err := findProfile(args[0])
		if err != nil {
			return err
		}
		return project.ExportProfile(args[1], p)
	},
}

var profilesRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Delete a custom profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stored, err := loadStoredProfiles()
		if err != nil {
			return err
		}
		if stored, err = dropProfile(stored, args[0]); err != nil {
			return err
		}
		return project.SaveCustomProfilesToDefault(stored)
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd, profilesImportCmd, profilesExportCmd, profilesRemoveCmd)
	rootCmd.AddCommand(profilesCmd)
}

// loadStoredProfiles reads the user's custom profiles and registers them.
func loadStoredProfiles() ([]model.GCodeProfile, error) {
	stored, err := project.LoadCustomProfilesFromDefault()
	if err != nil {
		return nil, fmt.Errorf("cannot load custom profiles: %w", err)
	}
	for _, p := range stored {
		if err := model.AddCustomProfile(p); err != nil {
			return nil, err
		}
	}
	return stored, nil
}

// addProfile registers p and adds or replaces it in the stored list.
func addProfile(stored []model.GCodeProfile, p model.GCodeProfile) ([]model.GCodeProfile, error) {
	if err := model.AddCustomProfile(p); err != nil {
		return nil, err
	}
	for i := range stored {
		if stored[i].Name == p.Name {
			stored[i] = p
			return stored, nil
		}
	}
	return append(stored, p), nil
}

// dropProfile unregisters the named profile and removes it from the list.
func dropProfile(stored []model.GCodeProfile, name string) ([]model.GCodeProfile, error) {
	if err := model.RemoveCustomProfile(name); err != nil {
		return nil, err
	}
	kept := make([]model.GCodeProfile, 0, len(stored))
	for _, p := range stored {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

// findProfile looks a profile up by exact name. model.GetProfile falls
// back to Generic, which is wrong for an export.
func findProfile(name string) (model.GCodeProfile, error) {
	for _, n := range model.GetProfileNames() {
		if n == name {
			return model.GetProfile(name), nil
		}
	}
	return model.GCodeProfile{}, fmt.Errorf("profile %q not found", name)
}

func printProfiles(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Name\tKind\tDescription")
	for _, name := range model.GetProfileNames() {
		p := model.GetProfile(name)
		kind := "custom"
		if p.IsBuiltIn {
			kind = "built-in"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, kind, p.Description)
	}
	w.Flush()
}
