package converter

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const skeleton = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title></title>
<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
</body>
</html>
`

// buildDocument places a rendered page into the HTML skeleton and appends a
// stylesheet link to <head> for every entry of stylesheets, in order.
func buildDocument(p page, stylesheets []string) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(skeleton))
	if err != nil {
		return nil, err
	}

	doc.Find("title").SetText(p.Title)

	head := doc.Find("head")
	for _, href := range stylesheets {
		head.AppendHtml(`<link rel="stylesheet" href="` + html.EscapeString(href) + `">` + "\n")
	}

	doc.Find("body").AppendHtml(p.Body)

	out, err := doc.Html()
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out), nil
}
