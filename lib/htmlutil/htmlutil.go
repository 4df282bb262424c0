package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

type Link struct {
	Title string
	Text  string
	Href  string
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = strings.Trim(s, " \t\n")
	return innerWhitespace.ReplaceAllString(s, " ")
}

// collects every anchor in the selection along with its "title"
// attribute, which on wiki-style flag annotations carries the full
// country name even when the visible text is abbreviated
func GetLinks(sel *goquery.Selection) []Link {
	links := []Link{}
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		links = append(links, Link{
			Title: a.AttrOr("title", ""),
			Text:  CleanText(a.Text()),
			Href:  a.AttrOr("href", ""),
		})
	})
	return links
}

// the level of a heading element ("h2" -> 2), or 0 if the
// node is not a heading
func HeadingLevel(node *html.Node) int {
	if node == nil || node.Type != html.ElementNode {
		return 0
	}
	tag := strings.ToLower(node.Data)
	if len(tag) != 2 || tag[0] != 'h' {
		return 0
	}
	if tag[1] < '1' || tag[1] > '6' {
		return 0
	}
	return int(tag[1] - '0')
}
