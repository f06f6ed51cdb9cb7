package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/kittygram-client/internal/client"
	"github.com/MKhiriev/kittygram-client/internal/config"
	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/internal/session"
	"github.com/MKhiriev/kittygram-client/internal/utils"
	"github.com/MKhiriev/kittygram-client/internal/validators"
	"github.com/MKhiriev/kittygram-client/models"
)

// errInvalidInput is returned after field errors were printed.
var errInvalidInput = errors.New("проверьте введённые данные")

// application is the part of the client runtime the commands use.
type application interface {
	Services() *service.ClientServices
	Run(ctx context.Context, route string) error
	Close() error
}

type cli struct {
	buildInfo models.AppBuildInfo

	// open builds the runtime for one command invocation.
	open func(ctx context.Context, flags *pflag.FlagSet) (application, error)
}

func newCLI(buildInfo models.AppBuildInfo) *cli {
	return &cli{
		buildInfo: buildInfo,
		open: func(ctx context.Context, flags *pflag.FlagSet) (application, error) {
			app, err := client.NewApp(ctx, flags, buildInfo)
			if err != nil {
				return nil, err
			}
			return app, nil
		},
	}
}

func newRootCmd(c *cli) *cobra.Command {
	var route string

	root := &cobra.Command{
		Use:   "kittygram",
		Short: "Терминальный клиент каталога котов Kittygram",
		Long: `kittygram работает с каталогом котов сервиса Kittygram.

Без аргументов запускается интерактивный интерфейс. Подкоманды выполняют
отдельные операции и подходят для скриптов.

Адрес сервиса, файл сессии и журнал настраиваются флагами, переменными
окружения (ADAPTER_ADDRESS, STORAGE_DB_DATABASE_URI, LOG_FILE, LOG_LEVEL)
или файлом конфигурации JSON/YAML (--config).`,
		Version:       c.buildInfo.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open(cmd.Context(), cmd.Flags())
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Run(cmd.Context(), route)
		},
	}

	config.RegisterFlags(root.PersistentFlags())
	root.Flags().StringVar(&route, "route", session.HomeRoute, "Экран, с которого начать (например /cats/5)")

	root.AddCommand(
		newListCmd(c),
		newShowCmd(c),
		newAddCmd(c),
		newEditCmd(c),
		newDeleteCmd(c),
		newLoginCmd(c),
		newRegisterCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newPaletteCmd(),
	)
	return root
}

// withServices opens the runtime around fn and closes it afterwards. Every
// request of one invocation carries the same X-Request-ID.
func (c *cli) withServices(fn func(cmd *cobra.Command, args []string, services *service.ClientServices) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(utils.WithRequestID(cmd.Context(), utils.NewRequestID()))

		app, err := c.open(cmd.Context(), cmd.Flags())
		if err != nil {
			return err
		}
		defer app.Close()

		return fn(cmd, args, app.Services())
	}
}

// flagNames maps form fields to the flags that set them.
var flagNames = map[string]string{
	models.FieldName:      "--name",
	models.FieldColor:     "--color",
	models.FieldBirthYear: "--birth-year",
	models.FieldImage:     "--image",
	models.FieldEmail:     "--email",
	models.FieldUsername:  "--username",
	models.FieldPassword:  "--password",
	models.FieldConfirm:   "--confirm",
}

// reportInvalid prints field errors one per line and returns errInvalidInput.
// Errors of any other kind are returned unchanged.
func reportInvalid(w io.Writer, err error) error {
	var fieldErrs validators.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, field := range slices.Sorted(maps.Keys(fieldErrs)) {
		name, ok := flagNames[field]
		if !ok {
			name = field
		}
		fmt.Fprintf(w, "  %s: %s\n", name, fieldErrs[field])
	}
	return errInvalidInput
}
