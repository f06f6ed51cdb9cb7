package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/kittygram-client/internal/app"
	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/models"
)

func newListCmd(c *cli) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Показать страницу каталога",
		Long: `Показывает одну страницу каталога котов.

Если сервис недоступен, выводятся тестовые данные и предупреждение.`,
		Args: cobra.NoArgs,
		RunE: c.withServices(func(cmd *cobra.Command, _ []string, services *service.ClientServices) error {
			catalog := services.CatService.ListCatalog(cmd.Context(), page)
			if catalog.Notice != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), catalog.Notice)
			}
			printCatalog(cmd.OutOrStdout(), catalog)
			return nil
		}),
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Номер страницы (с 1)")
	return cmd
}

func newShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Показать кота",
		Args:  cobra.ExactArgs(1),
		RunE: c.withServices(func(cmd *cobra.Command, args []string, services *service.ClientServices) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			detail, err := services.CatService.Detail(cmd.Context(), id)
			if err != nil {
				return err
			}
			printCat(cmd.OutOrStdout(), detail.Cat)
			return nil
		}),
	}
}

func newDeleteCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить кота",
		Long:  "Удаляет кота после подтверждения. Флаг --yes пропускает вопрос.",
		Args:  cobra.ExactArgs(1),
		RunE: c.withServices(func(cmd *cobra.Command, args []string, services *service.ClientServices) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), app.MsgDeleteConfirm) {
				fmt.Fprintln(cmd.OutOrStdout(), "Отменено")
				return nil
			}

			if err = services.CatService.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Кот #%d удалён\n", id)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Не спрашивать подтверждение")
	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidID, raw)
	}
	return id, nil
}

// confirm asks question and accepts y/yes/д/да.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}

func printCatalog(w io.Writer, catalog models.CatalogPage) {
	if len(catalog.Items) == 0 {
		fmt.Fprintln(w, "Пока нет котов")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Имя", "Цвет", "Год", "Достижения")
	for _, cat := range catalog.Items {
		t.Row(
			strconv.FormatInt(cat.ID, 10),
			cat.Name,
			colorSwatch(cat.Color),
			strconv.Itoa(cat.BirthYear),
			strconv.Itoa(len(cat.Achievements)),
		)
	}
	fmt.Fprintln(w, t.Render())

	c := catalog.Cursor
	if catalog.Offline || !c.Visible() {
		return
	}
	fmt.Fprintf(w, "стр. %d", c.CurrentPage)
	if c.HasPrevious {
		fmt.Fprintf(w, "   назад: kittygram list --page %d", c.CurrentPage-1)
	}
	if c.HasNext {
		fmt.Fprintf(w, "   вперёд: kittygram list --page %d", c.CurrentPage+1)
	}
	fmt.Fprintln(w)
}

func printCat(w io.Writer, cat models.Cat) {
	fmt.Fprintf(w, "#%d %s\n", cat.ID, cat.Name)
	fmt.Fprintf(w, "Цвет:          %s\n", colorSwatch(cat.Color))
	fmt.Fprintf(w, "Год рождения:  %d\n", cat.BirthYear)
	if cat.Age > 0 {
		fmt.Fprintf(w, "Возраст:       %d\n", cat.Age)
	}
	if cat.ImageURL != "" {
		fmt.Fprintf(w, "Изображение:   %s\n", cat.ImageURL)
	}
	if len(cat.Achievements) > 0 {
		fmt.Fprintln(w, "Достижения:")
		for _, a := range cat.Achievements {
			fmt.Fprintf(w, "  • %s\n", a.Name)
		}
	}
}
