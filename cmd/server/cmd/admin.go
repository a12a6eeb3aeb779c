package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"churchdata/internal/domain/admin"
	"churchdata/internal/infrastructure/storage"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var adminEmail string

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Управление администраторами",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать администратора",
	Long: `Создает учетную запись администратора. Пароль запрашивается без эха,
при вводе не из терминала читается первая строка stdin.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		password, err := readPassword(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}

		st, err := storage.Open(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer st.Close()

		service := admin.NewService(st.Admins, admin.NewCredentialsValidator(), log)
		a, err := service.Register(cmd.Context(), adminEmail, password)
		if err != nil {
			if errors.Is(err, admin.ErrAlreadyExists) {
				return fmt.Errorf("администратор %s уже существует", admin.NormalizeEmail(adminEmail))
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Администратор создан: %s (%s)\n", a.Email, a.ID)
		return nil
	},
}

func readPassword(prompt io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(prompt, "Пароль: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", err
	}

	fmt.Fprint(prompt, "Повторите пароль: ")
	confirm, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", err
	}

	if string(password) != string(confirm) {
		return "", errors.New("пароли не совпадают")
	}
	return string(password), nil
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "email администратора")
	_ = adminCreateCmd.MarkFlagRequired("email")

	adminCmd.AddCommand(adminCreateCmd)
}
