package key

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/keep/pkg/glyph"
)

// Key prints the symbol legend.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println("Key")

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	f := color.New(color.Faint)
	_, _ = f.Printf("avatars: %s\n", strings.Join(glyph.DefaultAvatars(), " "))
	return nil
}
