package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/kittygram-client/internal/app"
	"github.com/MKhiriev/kittygram-client/internal/catform"
	"github.com/MKhiriev/kittygram-client/internal/palette"
	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/internal/tui"
	"github.com/MKhiriev/kittygram-client/internal/validators"
	"github.com/MKhiriev/kittygram-client/models"
)

// catFlags are the form fields of add and edit. Only flags given on the
// command line touch the form, so edit keeps everything else.
type catFlags struct {
	name         string
	color        string
	birthYear    string
	achievements []string
	image        string
}

// register adds the form flags. The record service keeps the stored image
// unless a new one is uploaded, so there is no flag to remove it.
func (f *catFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Имя кота (до 16 символов)")
	fs.StringVar(&f.color, "color", "", "Цвет: название из kittygram palette или #RRGGBB")
	fs.StringVar(&f.birthYear, "birth-year", "", "Год рождения")
	fs.StringArrayVar(&f.achievements, "achievement", nil, "Достижение; флаг можно повторять")
	fs.StringVar(&f.image, "image", "", "Путь к изображению (JPEG, PNG, GIF, WebP, до 5MB)")
}

// apply copies the changed flags into form. Field problems come back as
// validators.FieldErrors.
func (f *catFlags) apply(ctx context.Context, fs *pflag.FlagSet, form *catform.Form) error {
	if fs.Changed("name") {
		form.SetField(models.FieldName, f.name)
	}
	if fs.Changed("color") {
		hex, err := colorFlagHex(f.color)
		if err != nil {
			return validators.FieldErrors{models.FieldColor: err.Error()}
		}
		form.SetField(models.FieldColor, hex)
	}
	if fs.Changed("birth-year") {
		form.SetField(models.FieldBirthYear, f.birthYear)
	}
	if fs.Changed("achievement") {
		for form.RemoveAchievementAt(0) {
		}
		for _, name := range f.achievements {
			form.AddAchievement(name)
		}
	}
	if fs.Changed("image") {
		if err := form.ChooseImagePath(ctx, f.image); err != nil {
			return validators.FieldErrors{models.FieldImage: form.ImageError()}
		}
	}
	return nil
}

// colorFlagHex accepts a palette identifier or a six digit hex value.
func colorFlagHex(value string) (string, error) {
	if palette.IsName(value) {
		return palette.NameToHex(value), nil
	}

	hex := palette.NormalizeHex(value)
	if len(hex) == 7 {
		if _, err := strconv.ParseUint(hex[1:], 16, 32); err == nil {
			return hex, nil
		}
	}
	return "", fmt.Errorf("неизвестный цвет %q, список: kittygram palette", value)
}

func newAddCmd(c *cli) *cobra.Command {
	var flags catFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить кота",
		Long: `Создаёт кота. Требуется вход (kittygram login).

Пример:
  kittygram add --name Мурзик --color black --birth-year 2020 \
    --achievement "Ловец мышей" --image ./murzik.png`,
		Args: cobra.NoArgs,
		RunE: c.withServices(func(cmd *cobra.Command, _ []string, services *service.ClientServices) error {
			if err := requireSignIn(services, tui.NavigateTo{Page: tui.PageCreate}); err != nil {
				return err
			}

			form := catform.NewCreateForm(services.Validator)
			return saveCat(cmd, services, form, &flags)
		}),
	}
	flags.register(cmd.Flags())
	return cmd
}

func newEditCmd(c *cli) *cobra.Command {
	var flags catFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Изменить кота",
		Long: `Изменяет кота. Поля без флагов сохраняют текущие значения;
--achievement заменяет весь список достижений. Требуется вход.`,
		Args: cobra.ExactArgs(1),
		RunE: c.withServices(func(cmd *cobra.Command, args []string, services *service.ClientServices) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err = requireSignIn(services, tui.NavigateTo{Page: tui.PageEdit, ID: id}); err != nil {
				return err
			}

			cat, err := services.CatService.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			form := catform.NewEditForm(services.Validator, cat)
			return saveCat(cmd, services, form, &flags)
		}),
	}
	flags.register(cmd.Flags())
	return cmd
}

// requireSignIn consults the guard for the screen the command stands for.
func requireSignIn(services *service.ClientServices, nav tui.NavigateTo) error {
	if d := services.Guard.Check(nav.Route()); !d.Allowed {
		return fmt.Errorf("%w: %s", service.ErrNotAuthenticated, app.MsgSignInHint)
	}
	return nil
}

func saveCat(cmd *cobra.Command, services *service.ClientServices, form *catform.Form, flags *catFlags) error {
	ctx := cmd.Context()
	if err := flags.apply(ctx, cmd.Flags(), form); err != nil {
		return reportInvalid(cmd.ErrOrStderr(), err)
	}

	send := catform.SendFunc(services.CatService.Create)
	if form.Mode() == catform.ModeEdit {
		id := form.ID()
		send = func(ctx context.Context, payload models.CatPayload) (models.Cat, error) {
			return services.CatService.Update(ctx, id, payload)
		}
	}

	cat, err := form.Submit(ctx, send)
	if err != nil {
		return reportInvalid(cmd.ErrOrStderr(), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Кот «%s» сохранён (#%d)\n", strings.TrimSpace(cat.Name), cat.ID)
	return nil
}
