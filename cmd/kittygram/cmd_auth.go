package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/models"
)

func newLoginCmd(c *cli) *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Войти",
		Long:  "Получает токен по email и паролю и сохраняет его в локальной базе.",
		Args:  cobra.NoArgs,
		RunE: c.withServices(func(cmd *cobra.Command, _ []string, services *service.ClientServices) error {
			if err := services.AuthService.SignIn(cmd.Context(), creds); err != nil {
				return reportInvalid(cmd.ErrOrStderr(), err)
			}

			name := services.AuthService.Username(cmd.Context())
			if name == "" {
				name = creds.Email
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Вы вошли как %s\n", name)
			return nil
		}),
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "Email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Пароль")
	return cmd
}

func newRegisterCmd(c *cli) *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Зарегистрироваться",
		Long:  "Создаёт учётную запись. Без --username имя берётся из email.",
		Args:  cobra.NoArgs,
		RunE: c.withServices(func(cmd *cobra.Command, _ []string, services *service.ClientServices) error {
			user, err := services.AuthService.SignUp(cmd.Context(), creds)
			if err != nil {
				return reportInvalid(cmd.ErrOrStderr(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Пользователь %s успешно зарегистрирован\n", user.Username)
			fmt.Fprintln(cmd.OutOrStdout(), "Теперь войдите: kittygram login")
			return nil
		}),
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "Email")
	cmd.Flags().StringVar(&creds.Username, "username", "", "Имя пользователя")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Пароль (не короче 6 символов)")
	cmd.Flags().StringVar(&creds.Confirm, "confirm", "", "Повтор пароля")
	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Выйти",
		Long:  "Отзывает токен на сервере и удаляет его локально, даже если сервер недоступен.",
		Args:  cobra.NoArgs,
		RunE: c.withServices(func(cmd *cobra.Command, _ []string, services *service.ClientServices) error {
			if err := services.AuthService.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Вы вышли из аккаунта")
			return nil
		}),
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Показать текущего пользователя",
		Args:  cobra.NoArgs,
		RunE: c.withServices(func(cmd *cobra.Command, _ []string, services *service.ClientServices) error {
			out := cmd.OutOrStdout()
			switch {
			case !services.AuthService.IsAuthenticated():
				fmt.Fprintln(out, "гость")
			default:
				if name := services.AuthService.Username(cmd.Context()); name != "" {
					fmt.Fprintln(out, name)
				} else {
					fmt.Fprintln(out, "вы вошли, но имя получить не удалось")
				}
			}
			return nil
		}),
	}
}
