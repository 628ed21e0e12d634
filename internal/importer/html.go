package importer

import (
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/nikbrunner/vscroll/internal/model"
	"golang.org/x/net/html"
)

// ErrNoViewport is returned when a document has no snapshot container.
var ErrNoViewport = errors.New("no viewport container found")

// Row is one positioned card read back from a snapshot.
type Row struct {
	Index int
	Top   int
	User  model.User
}

// Snapshot is the parsed form of an exported window.
type Snapshot struct {
	ScrollTop      int
	ViewportHeight int
	Extent         int
	Rows           []Row
}

// Users returns the users of the snapshot in row order.
func (s Snapshot) Users() []model.User {
	users := make([]model.User, len(s.Rows))
	for i, r := range s.Rows {
		users[i] = r.User
	}
	return users
}

var (
	heightRe = regexp.MustCompile(`(?:^|;)\s*height:\s*(\d+)px`)
	topRe    = regexp.MustCompile(`(?:^|;)\s*top:\s*(\d+)px`)
)

// ParseSnapshot reads a snapshot written by the exporter.
func ParseSnapshot(r io.Reader) (Snapshot, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	found := false

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case hasClass(n, "viewport"):
				found = true
				snap.ScrollTop = atoi(getAttr(n, "data-scroll-top"))
				snap.ViewportHeight = styleInt(n, heightRe)

			case hasClass(n, "spacer"):
				snap.Extent = styleInt(n, heightRe)

			case hasClass(n, "row"):
				snap.Rows = append(snap.Rows, parseRow(n))
				return // Don't recurse into rows
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	if !found {
		return Snapshot{}, ErrNoViewport
	}
	return snap, nil
}

func parseRow(n *html.Node) Row {
	row := Row{
		Index: atoi(getAttr(n, "data-index")),
		Top:   styleInt(n, topRe),
	}

	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode {
			switch {
			case hasClass(c, "user-id"):
				row.User.ID = getTextContent(c)
			case hasClass(c, "username"):
				row.User.Username = getTextContent(c)
			case hasClass(c, "email"):
				row.User.Email = getTextContent(c)
			case hasClass(c, "avatar"):
				row.User.Avatar = getAttr(c, "src")
			case hasClass(c, "password"):
				row.User.Password = getTextContent(c)
			}
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			walk(cc)
		}
	}
	walk(n)
	return row
}

func styleInt(n *html.Node, re *regexp.Regexp) int {
	m := re.FindStringSubmatch(getAttr(n, "style"))
	if m == nil {
		return 0
	}
	return atoi(m[1])
}

func atoi(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
