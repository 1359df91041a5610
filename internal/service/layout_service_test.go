package service

import (
	"errors"
	"testing"

	"github.com/lumie-registry/internal/layout"
)

func TestGetLayoutCreatesInitialLayoutLazily(t *testing.T) {
	f := newFixture(t)
	svc := NewLayoutService(f.layouts)

	if _, err := f.layouts.FindByGiftListID(f.list.ID); err == nil {
		t.Fatalf("expected no layout row before first access")
	}

	l, err := svc.GetLayout(f.list.ID)
	if err != nil {
		t.Fatalf("GetLayout failed: %v", err)
	}
	if len(l.Blocks) != 0 {
		t.Fatalf("expected no blocks before the host edits, got %d", len(l.Blocks))
	}
	if l.Theme.PrimaryColor != "#C86E52" {
		t.Fatalf("expected default theme on first access, got %s", l.Theme.PrimaryColor)
	}
	if _, err := f.layouts.FindByGiftListID(f.list.ID); err != nil {
		t.Fatalf("expected layout persisted after first access: %v", err)
	}

	again, err := svc.GetLayout(f.list.ID)
	if err != nil {
		t.Fatalf("second GetLayout failed: %v", err)
	}
	if len(again.Blocks) != 0 || again.Theme != l.Theme {
		t.Fatalf("expected stable layout across reads")
	}
}

func TestSaveLayoutFullDocumentUpsert(t *testing.T) {
	f := newFixture(t)
	svc := NewLayoutService(f.layouts)

	doc := layout.Layout{
		Blocks: []layout.Block{
			{Type: layout.BlockTypeHero, Order: 1, Enabled: true, Config: map[string]interface{}{"title": "Festa"}},
			{Type: layout.BlockTypeGifts, Order: 2, Enabled: true},
		},
		Theme:       layout.Theme{PrimaryColor: "#111111"},
		CustomStyle: ".hero { letter-spacing: 2px; }",
	}
	saved, err := svc.SaveLayout(f.list.ID, doc)
	if err != nil {
		t.Fatalf("SaveLayout failed: %v", err)
	}
	if saved.Blocks[0].ID == "" || saved.Blocks[1].ID == "" {
		t.Fatalf("expected ids assigned to blocks without one")
	}
	if saved.Theme.PrimaryColor != "#111111" {
		t.Fatalf("expected theme override applied")
	}
	if saved.Theme.BodyFont != "Inter" {
		t.Fatalf("expected missing theme fields filled from defaults")
	}

	reloaded, err := svc.GetLayout(f.list.ID)
	if err != nil {
		t.Fatalf("GetLayout failed: %v", err)
	}
	if len(reloaded.Blocks) != 2 {
		t.Fatalf("expected saved document to replace the previous one, got %d blocks", len(reloaded.Blocks))
	}
	if reloaded.CustomStyle != doc.CustomStyle {
		t.Fatalf("expected custom style persisted, got %q", reloaded.CustomStyle)
	}
}

func TestSaveLayoutRejectsUnknownBlockType(t *testing.T) {
	f := newFixture(t)
	svc := NewLayoutService(f.layouts)

	_, err := svc.SaveLayout(f.list.ID, layout.Layout{
		Blocks: []layout.Block{{Type: "carousel", Order: 1}},
	})
	if !errors.Is(err, layout.ErrUnknownBlockType) {
		t.Fatalf("expected ErrUnknownBlockType, got %v", err)
	}
}

func TestBlockOperationsPersist(t *testing.T) {
	f := newFixture(t)
	svc := NewLayoutService(f.layouts)

	l, block, err := svc.AddBlock(f.list.ID, layout.BlockTypeGallery)
	if err != nil {
		t.Fatalf("AddBlock failed: %v", err)
	}
	if block.Order != len(l.Blocks) {
		t.Fatalf("expected new block appended at the end, order %d of %d", block.Order, len(l.Blocks))
	}

	if _, err := svc.UpdateBlockConfig(f.list.ID, block.ID, map[string]interface{}{"title": "Fotos"}); err != nil {
		t.Fatalf("UpdateBlockConfig failed: %v", err)
	}
	if _, err := svc.SetBlockEnabled(f.list.ID, block.ID, false); err != nil {
		t.Fatalf("SetBlockEnabled failed: %v", err)
	}

	reloaded, err := svc.GetLayout(f.list.ID)
	if err != nil {
		t.Fatalf("GetLayout failed: %v", err)
	}
	persisted, ok := reloaded.FindBlock(block.ID)
	if !ok {
		t.Fatalf("expected block to survive reload")
	}
	if persisted.Config["title"] != "Fotos" {
		t.Fatalf("expected config change persisted, got %v", persisted.Config["title"])
	}
	if persisted.Enabled {
		t.Fatalf("expected enabled=false persisted")
	}

	if _, err := svc.RemoveBlock(f.list.ID, block.ID); err != nil {
		t.Fatalf("RemoveBlock failed: %v", err)
	}
	reloaded, _ = svc.GetLayout(f.list.ID)
	if _, ok := reloaded.FindBlock(block.ID); ok {
		t.Fatalf("expected block removed after RemoveBlock")
	}
}

func TestReorderBlocksValidatesPermutation(t *testing.T) {
	f := newFixture(t)
	svc := NewLayoutService(f.layouts)

	l, err := svc.SaveLayout(f.list.ID, layout.Default())
	if err != nil {
		t.Fatalf("SaveLayout failed: %v", err)
	}
	ids := make([]string, 0, len(l.Blocks))
	for i := len(l.Blocks) - 1; i >= 0; i-- {
		ids = append(ids, l.Blocks[i].ID)
	}

	reordered, err := svc.ReorderBlocks(f.list.ID, ids)
	if err != nil {
		t.Fatalf("ReorderBlocks failed: %v", err)
	}
	for i, block := range reordered.Blocks {
		if block.ID != ids[i] || block.Order != i+1 {
			t.Fatalf("expected dense renumbered order following the given sequence")
		}
	}

	if _, err := svc.ReorderBlocks(f.list.ID, ids[:1]); !errors.Is(err, layout.ErrInvalidReorder) {
		t.Fatalf("expected ErrInvalidReorder for partial sequence, got %v", err)
	}
}

func TestUpdateThemeMerges(t *testing.T) {
	f := newFixture(t)
	svc := NewLayoutService(f.layouts)

	updated, err := svc.UpdateTheme(f.list.ID, layout.Theme{PrimaryColor: "#222222"})
	if err != nil {
		t.Fatalf("UpdateTheme failed: %v", err)
	}
	if updated.Theme.PrimaryColor != "#222222" {
		t.Fatalf("expected primary color updated")
	}
	if updated.Theme.HeadingFont != "Cormorant Garamond" {
		t.Fatalf("expected untouched theme fields preserved")
	}
}

func TestUpdateThemeRejectsUnknownFont(t *testing.T) {
	f := newFixture(t)
	svc := NewLayoutService(f.layouts)

	if _, err := svc.UpdateTheme(f.list.ID, layout.Theme{HeadingFont: "Comic Sans"}); !errors.Is(err, layout.ErrUnknownFont) {
		t.Fatalf("expected ErrUnknownFont, got %v", err)
	}

	reloaded, err := svc.GetLayout(f.list.ID)
	if err != nil {
		t.Fatalf("GetLayout failed: %v", err)
	}
	if reloaded.Theme.HeadingFont != "Cormorant Garamond" {
		t.Fatalf("expected rejected update to leave theme untouched, got %q", reloaded.Theme.HeadingFont)
	}
}
