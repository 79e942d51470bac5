package shell

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// checkMountPoint verifies the layout contains an element with id.
func checkMountPoint(layout, id string) error {
	doc, err := html.Parse(strings.NewReader(layout))
	if err != nil {
		return fmt.Errorf("shell: parse layout: %w", err)
	}
	if findByID(doc, id) == nil {
		return fmt.Errorf("%w: no element with id %q", ErrMountPointMissing, id)
	}
	return nil
}

// mount returns the layout with fragment appended as the children of the
// element carrying id.
func mount(layout, id string, fragment []byte) ([]byte, error) {
	doc, err := html.Parse(strings.NewReader(layout))
	if err != nil {
		return nil, fmt.Errorf("shell: parse layout: %w", err)
	}
	root := findByID(doc, id)
	if root == nil {
		return nil, fmt.Errorf("%w: no element with id %q", ErrMountPointMissing, id)
	}

	nodes, err := html.ParseFragment(bytes.NewReader(fragment), root)
	if err != nil {
		return nil, fmt.Errorf("shell: parse form: %w", err)
	}
	for root.FirstChild != nil {
		root.RemoveChild(root.FirstChild)
	}
	for _, node := range nodes {
		root.AppendChild(node)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("shell: render page: %w", err)
	}
	return buf.Bytes(), nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
