package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/five82/handydiet/internal/diet"
	"github.com/five82/handydiet/internal/plan"
)

// DefaultExportFile is the file name used when exporting without a path.
const DefaultExportFile = "selezioni_dieta.json"

// ShoppingOptions select the shopping list to print.
type ShoppingOptions struct {
	// Day names the day; empty uses the first day. Ignored when Week is set.
	Day     string
	Week    bool
	Grouped bool
}

// Shopping prints the shopping list for a day or the whole week.
func (s *Session) Shopping(ctx context.Context, opts ShoppingOptions, w io.Writer) error {
	if err := s.Load(ctx); err != nil {
		return err
	}
	data := s.Data.Snapshot().Dataset
	day := ""
	if !opts.Week {
		name, err := resolveDay(data, opts.Day)
		if err != nil {
			return err
		}
		day = name
	}
	list := plan.Shopping(data, s.Overrides.State(), day, opts.Grouped)
	s.Logger.Debug("shopping list built",
		zap.String("day", day),
		zap.Int("items", len(list.Items)),
		zap.Int("entries", list.Entries),
	)
	return WriteShopping(w, list)
}

// WriteShopping renders list as aligned plain text.
func WriteShopping(w io.Writer, list plan.ShoppingList) error {
	title := "Lista spesa: settimana"
	if !list.Week() {
		title = "Lista spesa: " + list.Day
	}
	if _, err := fmt.Fprintf(w, "%s (%d voci, %d ingredienti)\n", title, len(list.Items), list.Entries); err != nil {
		return err
	}
	if len(list.Items) == 0 {
		_, err := fmt.Fprintln(w, "Nessun ingrediente.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if list.Buckets == nil {
		for _, it := range list.Items {
			fmt.Fprintf(tw, "  %s\t%s\n", it.Name, it.Quantity)
		}
		return tw.Flush()
	}
	for _, b := range list.Buckets {
		fmt.Fprintf(tw, "\n%s\t\n", b.Category)
		for _, it := range b.Items {
			fmt.Fprintf(tw, "  %s\t%s\n", it.Name, it.Quantity)
		}
	}
	return tw.Flush()
}

// Search prints every dish whose name contains query.
func (s *Session) Search(ctx context.Context, query string, w io.Writer) error {
	if err := s.Load(ctx); err != nil {
		return err
	}
	matches := plan.Search(s.Data.Snapshot().Dataset, query)
	if len(matches) == 0 {
		_, err := fmt.Fprintf(w, "Nessun risultato per %q\n", strings.TrimSpace(query))
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, m := range matches {
		kind := ""
		if m.Kind == plan.KindAlternative {
			kind = "(alternativa)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Day, m.MealType, m.DishName, kind)
	}
	return tw.Flush()
}

// Export writes the selections as JSON to path, or to w when path is "-".
// An empty path uses DefaultExportFile.
func (s *Session) Export(path string, w io.Writer) error {
	data, err := s.Overrides.ExportSelections()
	if err != nil {
		return fmt.Errorf("export selections: %w", err)
	}
	if path == "-" {
		_, err := w.Write(append(data, '\n'))
		return err
	}
	if path == "" {
		path = DefaultExportFile
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.Logger.Info("selections exported", zap.String("path", path))
	return nil
}

// Import replaces the selections with the contents of path. Swaps and
// promotions are left untouched.
func (s *Session) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := s.Overrides.ImportSelections(data); err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	s.Logger.Info("selections imported", zap.String("path", path))
	return nil
}

// ResetDay clears every selection made for day. The name is matched against
// the dataset so "lunedì" resets "Lunedì".
func (s *Session) ResetDay(ctx context.Context, day string) error {
	if err := s.Load(ctx); err != nil {
		return err
	}
	name, err := resolveDay(s.Data.Snapshot().Dataset, day)
	if err != nil {
		return err
	}
	if err := s.Overrides.ResetDay(name); err != nil {
		return err
	}
	s.Logger.Info("day selections reset", zap.String("day", name))
	return nil
}

// resolveDay matches name case-insensitively against the dataset's days.
// An empty name selects the first day.
func resolveDay(data diet.Dataset, name string) (string, error) {
	names := data.DayNames()
	if len(names) == 0 {
		return "", fmt.Errorf("dataset has no days")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return names[0], nil
	}
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown day %q (have %s)", name, strings.Join(names, ", "))
}
