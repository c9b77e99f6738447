// Command gymctl runs administrative tasks against the gym database using
// the same environment configuration as the server.
//
//	gymctl migrate
//	gymctl createsuperuser -email admin@example.com -username admin
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/aussiebroadwan/gymtrack/internal/gym/app"
	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/pkg/cryptox"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := app.LoadConfig()
	logger := app.NewLogger(cfg)
	cryptox.SetPepperPath(cfg.PepperFile)

	var err error
	switch os.Args[1] {
	case "migrate":
		err = migrate(ctx, cfg)
	case "createsuperuser":
		err = createSuperuser(ctx, cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: gymctl <migrate|createsuperuser> [flags]")
}

func migrate(ctx context.Context, cfg app.Config) error {
	st, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Println("migrations applied")
	return st.Close()
}

func createSuperuser(ctx context.Context, cfg app.Config, args []string) error {
	fs := flag.NewFlagSet("createsuperuser", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	username := fs.String("username", "", "username")
	passwordFlag := fs.String("password", "", "password; prompted for when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := bufio.NewReader(os.Stdin)
	if *email == "" {
		*email = prompt(in, "Email: ")
	}
	if *username == "" {
		*username = prompt(in, "Username: ")
	}

	password := *passwordFlag
	if password == "" {
		var err error
		if password, err = readPassword(in); err != nil {
			return err
		}
	}

	st, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	users := &service.UserService{Store: st}
	user, err := users.CreateSuperuser(ctx, *email, *username, password)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("invalid input: %s", ve.Error())
		}
		return err
	}

	fmt.Printf("Superuser %s created (%s)\n", user.Email, user.ID)
	return nil
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

// readPassword asks twice without echo. Piped input is read as a single line.
func readPassword(in *bufio.Reader) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return prompt(in, ""), nil
	}

	fmt.Print("Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	fmt.Print("Password (again): ")
	second, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
