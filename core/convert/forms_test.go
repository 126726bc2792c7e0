package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertFormElements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"form with input",
			`<form action="/s" method="get"><input type="text" name="q" required></form>`,
			"<form action=\"/s\" method=\"get\">\n<input type=\"text\" name=\"q\" required />\n</form>\n",
		},
		{
			"empty form dropped",
			`<form action="/s"></form>`,
			"",
		},
		{
			"fieldset with legend",
			`<fieldset><legend>Info</legend><label for="n">Name</label></fieldset>`,
			"<fieldset>\n<legend>Info</legend>\n\n<label for=\"n\">Name</label>\n</fieldset>\n",
		},
		{
			"checkbox outside list stays html",
			`<p><input type="checkbox" checked> OK</p>`,
			"<input type=\"checkbox\" checked /> OK\n",
		},
		{
			"textarea",
			`<textarea name="msg" rows="4">Hello</textarea>`,
			"<textarea name=\"msg\" rows=\"4\">Hello</textarea>\n",
		},
		{
			"select with options",
			`<select name="color"><option value="r">Red</option><option value="g" selected>Green</option></select>`,
			"<select name=\"color\">\n<option value=\"r\">Red</option>\n<option value=\"g\" selected>Green</option>\n</select>\n",
		},
		{
			"optgroup",
			`<select name="n"><optgroup label="Primary"><option value="r">Red</option></optgroup></select>`,
			"<select name=\"n\">\n<optgroup label=\"Primary\">\n<option value=\"r\">Red</option>\n</optgroup>\n</select>\n",
		},
		{
			"datalist",
			`<datalist id="colors"><option value="r">Red</option></datalist>`,
			"<datalist id=\"colors\">\n<option value=\"r\">Red</option>\n</datalist>\n",
		},
		{
			"button",
			`<button type="submit">Go</button>`,
			"<button type=\"submit\">Go</button>\n",
		},
		{
			"progress",
			`<progress value="7" max="10">70%</progress>`,
			"<progress value=\"7\" max=\"10\">70%</progress>\n",
		},
		{
			"meter",
			`<meter value="0.6" min="0" max="1">60%</meter>`,
			"<meter value=\"0.6\" min=\"0\" max=\"1\">60%</meter>\n",
		},
		{
			"output",
			`<output for="a b" name="result">12</output>`,
			"<output for=\"a b\" name=\"result\">12</output>\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, convertDefault(t, tc.input))
		})
	}
}

func TestConvertMediaElements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"audio",
			`<audio src="a.mp3" controls></audio>`,
			"<audio src=\"a.mp3\" controls />\n",
		},
		{
			"audio with fallback",
			`<audio src="a.mp3">No audio support</audio>`,
			"<audio src=\"a.mp3\">\nNo audio support\n</audio>\n",
		},
		{
			"video with nested source",
			`<video controls><source src="v.mp4"></video>`,
			"<video src=\"v.mp4\" controls />\n",
		},
		{
			"video attributes",
			`<video src="v.mp4" width="640" height="480" muted preload="auto"></video>`,
			"<video src=\"v.mp4\" width=\"640\" height=\"480\" muted preload=\"auto\" />\n",
		},
		{
			"iframe",
			`<iframe src="https://maps.example" width="400" height="300"></iframe>`,
			"<iframe src=\"https://maps.example\" width=\"400\" height=\"300\"></iframe>\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, convertDefault(t, tc.input))
		})
	}
}
