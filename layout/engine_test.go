package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hey-sweetie-print/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	return e
}

func TestPrepareMessage(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Unescapes entities", "Fish &amp; Chips &#39;n&#39; &quot;peas&quot;", `Fish & Chips 'n' "peas"`},
		{"Collapses blank lines", "Dear Ann,\n\n\nLove Bob", "Dear Ann,\nLove Bob"},
		{"Collapses CRLF runs", "Dear Ann,\r\n\r\nLove Bob", "Dear Ann,\nLove Bob"},
		{"Keeps single breaks", "Dear Ann,\r\nLove Bob", "Dear Ann,\r\nLove Bob"},
		{"Escaped newlines are collapsed after unescaping", "a&#10;&#10;b", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.PrepareMessage(tt.in))
		})
	}
}

func TestScore(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, 0, e.Score(""))
	assert.Equal(t, 3, e.Score("abc"))
	assert.Equal(t, 3+15, e.Score("a\nb"))
	assert.Equal(t, 4+15, e.Score("a\r\nb"), "CRLF counts as one break")
	assert.Equal(t, 5, e.Score("héllo"), "length counts characters, not bytes")
	assert.Equal(t, 250, e.Score(strings.Repeat("x", 300)))
	assert.Equal(t, 250, e.Score(strings.Repeat("x\n", 20)))
}

func TestFontSize(t *testing.T) {
	e := newTestEngine(t)

	assert.InDelta(t, 3.0, e.FontSize(0), 1e-9)
	assert.InDelta(t, 1.25, e.FontSize(250), 1e-9)
	assert.InDelta(t, 2.125, e.FontSize(125), 1e-9)
	assert.InDelta(t, 1.25, e.FontSize(400), 1e-9, "clamped below")
	assert.InDelta(t, 3.0, e.FontSize(-50), 1e-9, "clamped above")
}

func TestFontSize_Monotonic(t *testing.T) {
	e := newTestEngine(t)

	prev := e.FontSize(0)
	for score := 1; score <= 300; score++ {
		size := e.FontSize(score)
		assert.LessOrEqual(t, size, prev, "score %d", score)
		assert.GreaterOrEqual(t, size, 1.25)
		assert.LessOrEqual(t, size, 3.0)
		prev = size
	}
}

func TestMessageCell_NeverTruncates(t *testing.T) {
	e := newTestEngine(t)
	long := strings.Repeat("Happy birthday! ", 40)

	cell := e.MessageCell(long)

	assert.Equal(t, long, cell.Text)
	assert.InDelta(t, 1.25, cell.FontSize, 1e-9)
}

func TestMessagePages(t *testing.T) {
	e := newTestEngine(t)
	var list []models.Order
	for i := 0; i < 13; i++ {
		list = append(list, models.Order{Message: fmt.Sprintf("message %d", i), Quantity: 1})
		if i%5 == 0 {
			list = append(list, models.Order{Name: "no message", Quantity: 1})
		}
	}

	pages := e.MessagePages(list)

	require.Len(t, pages, 3)
	assert.Len(t, pages[0].Cells, 6)
	assert.Len(t, pages[1].Cells, 6)
	assert.Len(t, pages[2].Cells, 1)
	assert.Equal(t, []int{1, 2, 3}, []int{pages[0].Number, pages[1].Number, pages[2].Number})
	assert.Equal(t, "message 0", pages[0].Cells[0].Text)
	assert.Equal(t, "message 12", pages[2].Cells[0].Text)
}

func TestMessagePages_NoMessages(t *testing.T) {
	e := newTestEngine(t)

	assert.Empty(t, e.MessagePages([]models.Order{{Name: "Ann", Quantity: 1}}))
	assert.Empty(t, e.MessagePages(nil))
}

func TestLabelText(t *testing.T) {
	e := newTestEngine(t)
	order := models.Order{
		Name:     "Ann Example",
		Address1: "1 High Street",
		Address3: "Bristol",
		Postcode: "BS1 1AA",
	}

	assert.Equal(t, "Ann Example\n1 High Street\nBristol\nBS1 1AA", e.LabelText(order))
	assert.Equal(t, "", e.LabelText(models.Order{}))
}

func TestLabelPages(t *testing.T) {
	e := newTestEngine(t)
	var list []models.Order
	for i := 0; i < 15; i++ {
		list = append(list, models.Order{Name: fmt.Sprintf("Person %d", i), Postcode: "AB1 2CD", Quantity: 1})
	}

	pages := e.LabelPages(list)

	require.Len(t, pages, 2)
	assert.Len(t, pages[0].Cells, 14)
	assert.Len(t, pages[1].Cells, 1)
	assert.Equal(t, "Person 14\nAB1 2CD", pages[1].Cells[0].Text)
	assert.Equal(t, []string{"Person 14", "AB1 2CD"}, pages[1].Cells[0].Lines)
}

func TestEngine_CustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MessagesPerPage = 2
	cfg.LabelsPerPage = 3
	cfg.MaxMessageLength = 10
	e, err := NewEngine(cfg)
	require.NoError(t, err)

	list := []models.Order{{Message: "a"}, {Message: "b"}, {Message: "c"}}

	assert.Len(t, e.MessagePages(list), 2)
	assert.Len(t, e.LabelPages(list), 1)
	assert.Equal(t, 10, e.Score(strings.Repeat("x", 50)))
}

func TestNewEngine_RejectsInvalidConfig(t *testing.T) {
	e, err := NewEngine(Config{})

	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, e)

	cfg := DefaultConfig()
	cfg.BorderColor = "rgb(1, 2, 3)}"
	_, err = NewEngine(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
