package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/htmlmd/core"
)

func TestConvertTableWithHeader(t *testing.T) {
	src := "<table><tr><th>Name</th><th>Age</th></tr><tr><td>Jane</td><td>30</td></tr></table>"
	want := "| Name | Age |\n| --- | --- |\n| Jane | 30 |\n"
	assert.Equal(t, want, convertDefault(t, src))
}

func TestConvertTableSections(t *testing.T) {
	src := "<table><thead><tr><th>H1</th><th>H2</th></tr></thead>" +
		"<tbody><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></tbody></table>"
	want := "| H1 | H2 |\n| --- | --- |\n| a | b |\n| c | d |\n"
	assert.Equal(t, want, convertDefault(t, src))
}

func TestConvertTableHeaderlessPromotesFirstRow(t *testing.T) {
	src := "<table><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></table>"
	want := "| a | b |\n| --- | --- |\n| c | d |\n"
	assert.Equal(t, want, convertDefault(t, src))
}

func TestConvertTableCaption(t *testing.T) {
	src := "<table><caption>People</caption><tr><th>N</th></tr><tr><td>j</td></tr></table>"
	want := "People\n| N |\n| --- |\n| j |\n"
	assert.Equal(t, want, convertDefault(t, src))
}

func TestConvertTableColspan(t *testing.T) {
	src := `<table><tr><th colspan="2">Wide</th><th>N</th></tr>` +
		"<tr><td>a</td><td>b</td><td>c</td></tr></table>"
	want := "| Wide | | N |\n| --- | --- | --- |\n| a | b | c |\n"
	assert.Equal(t, want, convertDefault(t, src))
}

func TestConvertTableCellFlattening(t *testing.T) {
	src := "<table><tr><th>A</th></tr><tr><td>multi<br>line</td></tr></table>"
	assert.Equal(t, "| A |\n| --- |\n| multi   line |\n", convertDefault(t, src))

	kept := convertWith(t, src, func(o *core.Options) { o.BrInTables = true })
	assert.Equal(t, "| A |\n| --- |\n| multi<br>line |\n", kept)
}

func TestConvertTableCellImage(t *testing.T) {
	src := `<table><tr><th>I</th></tr><tr><td><img src="x.png" alt="pic"></td></tr></table>`
	want := "| I |\n| --- |\n| ![pic](x.png) |\n"
	assert.Equal(t, want, convertDefault(t, src))
}

func TestConvertTableSpacing(t *testing.T) {
	src := "<p>intro</p><table><tr><th>A</th></tr><tr><td>1</td></tr></table><p>outro</p>"
	want := "intro\n\n| A |\n| --- |\n| 1 |\n\noutro\n"
	assert.Equal(t, want, convertDefault(t, src))
}
