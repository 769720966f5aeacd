package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a starter configuration file interactively.

You will be prompted for:
  - HTTP port
  - Access token for /getBooks
  - Optional catalog file (the built-in example catalog is used otherwise)`,
	// init runs before any config exists, so skip the root config loading.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              runInit,
}

func init() {
	initCmd.Flags().StringP("output", "o", "config.yaml", "path of the config file to write")
	initCmd.Flags().Bool("force", false, "overwrite an existing file")

	rootCmd.AddCommand(initCmd)
}

// initConfig is the subset of the configuration written by init.
type initConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Auth struct {
		Token struct {
			Inline string `yaml:"inline"`
		} `yaml:"token"`
	} `yaml:"auth"`
	Catalog *struct {
		File string `yaml:"file"`
	} `yaml:"catalog,omitempty"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func newInitConfig(port int, token, catalogFile string) initConfig {
	var c initConfig
	c.Server.Port = port
	c.Auth.Token.Inline = token
	if catalogFile != "" {
		c.Catalog = &struct {
			File string `yaml:"file"`
		}{File: catalogFile}
	}
	c.Log.Level = "info"
	c.Log.Format = "text"
	return c
}

func runInit(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", output)
	}

	portPrompt := promptui.Prompt{
		Label:    "Port",
		Default:  "5708",
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}
	port, _ := strconv.Atoi(portStr)

	tokenPrompt := promptui.Prompt{
		Label: "Access token",
		Mask:  '*',
		Validate: func(s string) error {
			if s == "" {
				return errors.New("token cannot be empty")
			}
			return nil
		},
	}
	token, err := tokenPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	catalogPrompt := promptui.Prompt{
		Label: "Catalog file (empty for the example catalog)",
	}
	catalogFile, err := catalogPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	data, err := yaml.Marshal(newInitConfig(port, token, catalogFile))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(output, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	slog.Info("config written", "path", output)
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s. Start the server with 'bookstall serve --config %s'.\n", output, output)
	return nil
}

func validatePort(s string) error {
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("port must be a number")
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
