package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/keyring"
	"github.com/julianstephens/ibadah/internal/kv/backend"
	"github.com/julianstephens/ibadah/internal/kv/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a secret in the OS keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Show a stored secret, masked."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove a stored secret."`
	Status KeyringStatusCmd `cmd:"" default:"1" help:"Check keyring availability."`
}

// KeyringSetCmd stores a credential in the OS keyring
type KeyringSetCmd struct {
	Name  string `arg:"" enum:"database-connection,smtp-password" help:"Secret name (database-connection or smtp-password)."`
	Value string `arg:"" help:"Secret value."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	secret, err := keyring.ParseSecret(cmd.Name)
	if err != nil {
		return err
	}

	if secret == keyring.ConnectionString {
		if err := validateConnString(ctx, cmd.Value); err != nil {
			return err
		}
	}

	if err := keyring.Set(secret, cmd.Value); err != nil {
		return err
	}

	ctx.Printf("✓ %s stored successfully in OS keyring\n", secret)
	if secret == keyring.ConnectionString {
		ctx.Println(`  Set storage.dsn to "keyring" to use it`)
	}
	return nil
}

func validateConnString(ctx *cli.Context, connStr string) error {
	switch backend.Detect(connStr) {
	case backend.KindRedis:
		return nil
	case backend.KindPostgres:
	default:
		if !strings.Contains(connStr, "host=") {
			return errors.New("connection string must be a PostgreSQL or Redis connection string")
		}
	}

	err := postgres.ValidateConnString(connStr)
	if errors.Is(err, postgres.ErrEmbeddedCredentials) {
		ctx.Println("⚠️  Warning: Connection string contains embedded credentials.")
		ctx.Println("   It will be stored as-is in the encrypted OS keyring.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid connection string: %w", err)
	}
	return nil
}

// KeyringGetCmd prints a stored credential with its password masked
type KeyringGetCmd struct {
	Name string `arg:"" enum:"database-connection,smtp-password" help:"Secret name."`
}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	secret, err := keyring.ParseSecret(cmd.Name)
	if err != nil {
		return err
	}
	value, err := keyring.Get(secret)
	if errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("no %s found in keyring. Use 'ibadah keyring set' to store one", secret)
	}
	if err != nil {
		return err
	}

	if secret == keyring.SMTPPassword {
		ctx.Println("****")
		return nil
	}
	ctx.Println(maskPassword(value))
	return nil
}

// KeyringDeleteCmd removes a credential from the OS keyring
type KeyringDeleteCmd struct {
	Name string `arg:"" enum:"database-connection,smtp-password" help:"Secret name."`
}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	secret, err := keyring.ParseSecret(cmd.Name)
	if err != nil {
		return err
	}
	if err := keyring.Delete(secret); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no %s found in keyring", secret)
		}
		return err
	}
	ctx.Printf("✓ %s deleted from OS keyring\n", secret)
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		ctx.Println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}
	ctx.Println("✓ OS keyring is available")
	for _, s := range keyring.Secrets {
		if _, err := keyring.Get(s); err == nil {
			ctx.Printf("✓ %s is stored\n", s)
		} else {
			ctx.Printf("ℹ No %s stored\n", s)
		}
	}
	return nil
}

// maskPassword hides the password of a URL or key=value connection string.
func maskPassword(connStr string) string {
	if idx := strings.Index(connStr, "://"); idx != -1 {
		remaining := connStr[idx+3:]
		if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
			userInfo := remaining[:atIdx]
			if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
				return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
			}
		}
		return connStr
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		for i, part := range parts {
			if strings.HasPrefix(part, "password=") {
				parts[i] = "password=****"
			}
		}
		return strings.Join(parts, " ")
	}
	return connStr
}
