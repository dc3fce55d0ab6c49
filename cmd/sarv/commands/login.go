package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvclient"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiURL    string
		userType  string
		username  string
		password  string
		loginType string
		language  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to SarvCRM",
		Long:  "Authenticate with a SarvCRM deployment and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiURL == "" {
				apiURL = viper.GetString("url")
			}

			if apiURL == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API URL: ")
				apiURL, _ = reader.ReadString('\n')
				apiURL = strings.TrimSpace(apiURL)
			}

			if apiURL == "" {
				return ErrURLRequired
			}

			if userType == "" {
				userType = viper.GetString("usertype")
			}

			if username == "" {
				username = viper.GetString("username")
			}

			if username == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Username: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if username == "" {
				return ErrUsernameRequired
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			if password == "" {
				return ErrPasswordRequired
			}

			client, err := sarvclient.New(&sarvcrm.Config{
				BaseURL:   apiURL,
				UserType:  userType,
				Username:  username,
				Password:  password,
				LoginType: loginType,
				Language:  language,
				Debug:     viper.GetBool("debug"),
				Logger:    newLogger(),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			token, err := client.Login(context.Background())
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			// Persist the session, never the password
			config := loadConfig()
			config.URL = apiURL
			config.UserType = userType
			config.Username = username
			config.Token = token

			if language != "" {
				config.Language = language
			}

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to %s as %s\n", apiURL, username)

			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVar(&apiURL, "url", "", "API endpoint URL")
	cmd.Flags().StringVar(&userType, "usertype", "", "account type discriminator (e.g. corporate)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username for authentication")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for authentication")
	cmd.Flags().StringVar(&loginType, "login-type", "", "optional login type")
	cmd.Flags().StringVar(&language, "language", "", "locale for server messages (en_US, fa_IR)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from SarvCRM",
		Long:  "Discard the stored session token; the server session expires on its own",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
