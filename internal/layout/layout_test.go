package layout

import (
	"errors"
	"testing"
)

func TestAddBlockAssignsNextOrder(t *testing.T) {
	l := Layout{Theme: DefaultTheme()}

	first, err := l.AddBlock(BlockTypeHero)
	if err != nil {
		t.Fatalf("AddBlock hero failed: %v", err)
	}
	if first.Order != 1 {
		t.Fatalf("expected first block order 1, got %d", first.Order)
	}

	second, err := l.AddBlock(BlockTypeGifts)
	if err != nil {
		t.Fatalf("AddBlock gifts failed: %v", err)
	}
	if second.Order != 2 {
		t.Fatalf("expected second block order 2, got %d", second.Order)
	}
	if second.ID == first.ID {
		t.Fatalf("expected distinct block ids")
	}
	if len(first.Config) != 0 {
		t.Fatalf("expected new block config to start empty, got %v", first.Config)
	}
}

func TestAddBlockRejectsUnknownType(t *testing.T) {
	l := Default()
	if _, err := l.AddBlock("marquee"); !errors.Is(err, ErrUnknownBlockType) {
		t.Fatalf("expected ErrUnknownBlockType, got %v", err)
	}
}

func TestAddBlockAfterSparseOrders(t *testing.T) {
	l := Layout{Blocks: []Block{
		NewBlock(BlockTypeHero, 3),
		NewBlock(BlockTypeGifts, 10),
	}}
	block, err := l.AddBlock(BlockTypeCountdown)
	if err != nil {
		t.Fatalf("AddBlock failed: %v", err)
	}
	if block.Order != 3 {
		t.Fatalf("expected order 3 (count + 1), got %d", block.Order)
	}
	// order 冲突交给稳定排序解决，追加的积木排在后面
	sorted := l.SortedBlocks()
	if sorted[0].Type != BlockTypeHero || sorted[1].Type != BlockTypeCountdown {
		t.Fatalf("expected stable sort to keep appended block after the equal-order one")
	}
}

func TestRemoveBlockMissingIDIsNoop(t *testing.T) {
	l := Default()
	before := len(l.Blocks)
	if removed := l.RemoveBlock("does-not-exist"); removed {
		t.Fatalf("expected removal of missing id to report false")
	}
	if len(l.Blocks) != before {
		t.Fatalf("expected block count unchanged, got %d", len(l.Blocks))
	}
}

func TestUpdateBlockConfigMergesKeys(t *testing.T) {
	l := Default()
	hero := l.Blocks[0]

	if ok := l.UpdateBlockConfig(hero.ID, map[string]interface{}{"title": "Casamento"}); !ok {
		t.Fatalf("expected update to find block")
	}
	updated, _ := l.FindBlock(hero.ID)
	if updated.Config["title"] != "Casamento" {
		t.Fatalf("expected title overwritten, got %v", updated.Config["title"])
	}
	if _, ok := updated.Config["subtitle"]; !ok {
		t.Fatalf("expected untouched keys preserved after merge")
	}
}

func TestReorderRenumbersDense(t *testing.T) {
	l := Layout{Blocks: []Block{
		NewBlock(BlockTypeHero, 5),
		NewBlock(BlockTypeGifts, 9),
		NewBlock(BlockTypeCountdown, 20),
	}}
	ids := []string{l.Blocks[2].ID, l.Blocks[0].ID, l.Blocks[1].ID}

	if err := l.Reorder(ids); err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}
	for i, block := range l.Blocks {
		if block.Order != i+1 {
			t.Fatalf("expected dense order %d at position %d, got %d", i+1, i, block.Order)
		}
		if block.ID != ids[i] {
			t.Fatalf("expected block %s at position %d, got %s", ids[i], i, block.ID)
		}
	}
}

func TestReorderRejectsNonPermutation(t *testing.T) {
	l := Layout{Blocks: []Block{
		NewBlock(BlockTypeHero, 1),
		NewBlock(BlockTypeGifts, 2),
	}}

	cases := [][]string{
		{l.Blocks[0].ID},
		{l.Blocks[0].ID, l.Blocks[0].ID},
		{l.Blocks[0].ID, "stranger"},
		{l.Blocks[0].ID, l.Blocks[1].ID, "extra"},
	}
	for _, ids := range cases {
		if err := l.Reorder(ids); !errors.Is(err, ErrInvalidReorder) {
			t.Fatalf("expected ErrInvalidReorder for %v, got %v", ids, err)
		}
	}
	if l.Blocks[0].Order != 1 || l.Blocks[1].Order != 2 {
		t.Fatalf("expected orders untouched after rejected reorder")
	}
}

func TestDecodeEmptyFallsBackToInitialLayout(t *testing.T) {
	l, err := Decode(nil, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(l.Blocks) != 0 {
		t.Fatalf("expected no blocks before the host edits, got %d", len(l.Blocks))
	}
	if l.Theme.PrimaryColor != "#C86E52" {
		t.Fatalf("expected default primary color, got %s", l.Theme.PrimaryColor)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	original := Default()
	original.Blocks[0].Config["title"] = "Bodas de Prata"
	original.Theme.PrimaryColor = "#123456"

	blocksRaw, err := original.EncodeBlocks()
	if err != nil {
		t.Fatalf("EncodeBlocks failed: %v", err)
	}
	themeRaw, err := original.EncodeTheme()
	if err != nil {
		t.Fatalf("EncodeTheme failed: %v", err)
	}

	restored, err := Decode(blocksRaw, themeRaw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(restored.Blocks) != len(original.Blocks) {
		t.Fatalf("expected %d blocks, got %d", len(original.Blocks), len(restored.Blocks))
	}
	if restored.Blocks[0].Config["title"] != "Bodas de Prata" {
		t.Fatalf("expected edited title to survive round trip")
	}
	if restored.Theme.PrimaryColor != "#123456" {
		t.Fatalf("expected edited primary color to survive round trip")
	}
	if restored.Theme.BodyFont != "Inter" {
		t.Fatalf("expected default body font preserved, got %s", restored.Theme.BodyFont)
	}
}

func TestThemeMergeKeepsUnsetFields(t *testing.T) {
	merged := DefaultTheme().Merge(Theme{PrimaryColor: "#000000"})
	if merged.PrimaryColor != "#000000" {
		t.Fatalf("expected primary color overridden")
	}
	if merged.HeadingFont != "Cormorant Garamond" {
		t.Fatalf("expected heading font preserved, got %s", merged.HeadingFont)
	}
}
