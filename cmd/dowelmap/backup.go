package main

import (
	"github.com/piwi3910/DowelMap/internal/project"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Save or restore the user config and custom profiles",
}

var backupExportCmd = &cobra.Command{
	Use:   "export [backup file]",
	Short: "Write the user config and custom profiles to one file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := project.DefaultProfilesPath()
		if err != nil {
			return err
		}
		return createBackup(args[0], project.DefaultConfigPath(), profiles)
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore [backup file]",
	Short: "Replace the user config and custom profiles from a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := project.DefaultProfilesPath()
		if err != nil {
			return err
		}
		return restoreBackup(args[0], project.DefaultConfigPath(), profiles)
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd, backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}

func createBackup(path, configPath, profilesPath string) error {
	cfg, err := project.LoadAppConfig(configPath)
	if err != nil {
		return err
	}
	profiles, err := project.LoadCustomProfiles(profilesPath)
	if err != nil {
		return err
	}
	if err := project.ExportAllData(path, cfg, profiles); err != nil {
		return err
	}
	log.Info().Str("path", path).Int("profiles", len(profiles)).Msg("backup written")
	return nil
}

func restoreBackup(path, configPath, profilesPath string) error {
	backup, err := project.ImportAllData(path)
	if err != nil {
		return err
	}
	if err := project.SaveAppConfig(configPath, backup.Config); err != nil {
		return err
	}
	if err := project.SaveCustomProfiles(profilesPath, backup.Profiles); err != nil {
		return err
	}
	log.Info().Str("version", backup.Version).Int("profiles", len(backup.Profiles)).Msg("backup restored")
	return nil
}
