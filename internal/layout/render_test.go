package layout

import (
	"testing"
	"time"
)

func testPageContext() PageContext {
	eventDate := time.Date(2026, 11, 20, 16, 0, 0, 0, time.UTC)
	gifts := make([]GiftView, 0, 8)
	for i := 0; i < 8; i++ {
		gifts = append(gifts, GiftView{ID: uint(i + 1), Name: "Presente", Price: "50.00", AvailableQuantity: 1})
	}
	messages := make([]MessageView, 0, 6)
	for i := 0; i < 6; i++ {
		messages = append(messages, MessageView{GuestName: "Convidado", Body: "Felicidades!"})
	}
	return PageContext{
		ListTitle:           "Casamento Ana & João",
		EventDate:           &eventDate,
		EventLocation:       "São Paulo",
		AllowPublicMessages: true,
		Gifts:               gifts,
		Messages:            messages,
	}
}

func findRendered(t *testing.T, rendered []RenderedBlock, blockType string) RenderedBlock {
	t.Helper()
	for _, block := range rendered {
		if block.Type == blockType {
			return block
		}
	}
	t.Fatalf("expected rendered block of type %s", blockType)
	return RenderedBlock{}
}

func TestRenderSkipsDisabledBlocks(t *testing.T) {
	l := Default()
	l.SetBlockEnabled(l.Blocks[0].ID, false)

	rendered := Render(l, testPageContext())
	for _, block := range rendered {
		if block.ID == l.Blocks[0].ID {
			t.Fatalf("expected disabled block to be skipped")
		}
	}
}

func TestRenderSkipsUnknownBlockType(t *testing.T) {
	l := Layout{Blocks: []Block{
		NewBlock(BlockTypeHero, 1),
		{ID: "legacy", Type: "carousel", Order: 2, Enabled: true},
	}, Theme: DefaultTheme()}

	rendered := Render(l, testPageContext())
	if len(rendered) != 1 {
		t.Fatalf("expected unknown block type skipped, got %d rendered blocks", len(rendered))
	}
	if rendered[0].Type != BlockTypeHero {
		t.Fatalf("expected hero rendered, got %s", rendered[0].Type)
	}
}

func TestRenderOrdersBlocksByOrder(t *testing.T) {
	l := Layout{Blocks: []Block{
		NewBlock(BlockTypeGifts, 30),
		NewBlock(BlockTypeHero, 10),
		NewBlock(BlockTypeMessage, 20),
	}, Theme: DefaultTheme()}

	rendered := Render(l, testPageContext())
	if len(rendered) != 3 {
		t.Fatalf("expected 3 rendered blocks, got %d", len(rendered))
	}
	for i := 1; i < len(rendered); i++ {
		if rendered[i-1].Order > rendered[i].Order {
			t.Fatalf("expected output sorted by order, got %d before %d", rendered[i-1].Order, rendered[i].Order)
		}
	}
	if rendered[0].Type != BlockTypeHero {
		t.Fatalf("expected hero first, got %s", rendered[0].Type)
	}
}

func TestRenderGiftsCappedAtPreviewLimit(t *testing.T) {
	l := Default()
	rendered := Render(l, testPageContext())

	props := findRendered(t, rendered, BlockTypeGifts).Props.(GiftsProps)
	if len(props.Gifts) != 6 {
		t.Fatalf("expected 6 gifts on public page, got %d", len(props.Gifts))
	}
	if props.Title != "Escolha um Presente" {
		t.Fatalf("expected default gifts title, got %s", props.Title)
	}
	if props.TotalCount != 8 {
		t.Fatalf("expected total count to report all gifts, got %d", props.TotalCount)
	}
}

func TestRenderMessagesCappedAndGated(t *testing.T) {
	l := Default()
	ctx := testPageContext()

	rendered := Render(l, ctx)
	props := findRendered(t, rendered, BlockTypeMessages).Props.(MessagesProps)
	if len(props.Messages) != 4 {
		t.Fatalf("expected 4 messages on public page, got %d", len(props.Messages))
	}

	ctx.AllowPublicMessages = false
	for _, block := range Render(l, ctx) {
		if block.Type == BlockTypeMessages {
			t.Fatalf("expected messages block hidden when list disallows public messages")
		}
	}

	ctx.AllowPublicMessages = true
	for i := range l.Blocks {
		if l.Blocks[i].Type == BlockTypeMessages {
			l.Blocks[i].Config["showPublicly"] = false
		}
	}
	for _, block := range Render(l, ctx) {
		if block.Type == BlockTypeMessages {
			t.Fatalf("expected messages block hidden when showPublicly is false")
		}
	}
}

func TestRenderGallerySkippedWhenEmpty(t *testing.T) {
	l := Layout{Blocks: []Block{NewBlock(BlockTypeGallery, 1)}, Theme: DefaultTheme()}
	if rendered := Render(l, testPageContext()); len(rendered) != 0 {
		t.Fatalf("expected empty gallery to be skipped, got %d blocks", len(rendered))
	}

	l.Blocks[0].Config["images"] = []interface{}{"a.jpg", "b.jpg"}
	rendered := Render(l, testPageContext())
	props := findRendered(t, rendered, BlockTypeGallery).Props.(GalleryProps)
	if len(props.Images) != 2 {
		t.Fatalf("expected 2 gallery images, got %d", len(props.Images))
	}
}

func TestRenderCountdownFallsBackToEventDate(t *testing.T) {
	l := Layout{Blocks: []Block{NewBlock(BlockTypeCountdown, 1)}, Theme: DefaultTheme()}
	ctx := testPageContext()

	rendered := Render(l, ctx)
	props := findRendered(t, rendered, BlockTypeCountdown).Props.(CountdownProps)
	if props.TargetDate == nil || !props.TargetDate.Equal(*ctx.EventDate) {
		t.Fatalf("expected countdown to fall back to event date")
	}

	ctx.EventDate = nil
	if rendered := Render(l, ctx); len(rendered) != 0 {
		t.Fatalf("expected countdown without any date to be skipped")
	}

	l.Blocks[0].Config["targetDate"] = "2027-01-01"
	rendered = Render(l, ctx)
	props = findRendered(t, rendered, BlockTypeCountdown).Props.(CountdownProps)
	if props.TargetDate == nil || props.TargetDate.Year() != 2027 {
		t.Fatalf("expected configured target date, got %v", props.TargetDate)
	}
}

func TestRenderEventInfoFallsBackToListFields(t *testing.T) {
	l := Layout{Blocks: []Block{NewBlock(BlockTypeEventInfo, 1)}, Theme: DefaultTheme()}
	ctx := testPageContext()

	props := findRendered(t, Render(l, ctx), BlockTypeEventInfo).Props.(EventInfoProps)
	if props.Date != "2026-11-20" {
		t.Fatalf("expected event date fallback, got %s", props.Date)
	}
	if props.Location != "São Paulo" {
		t.Fatalf("expected event location fallback, got %s", props.Location)
	}
	if props.Title != "Informações do Evento" {
		t.Fatalf("expected default event info title, got %s", props.Title)
	}
}
