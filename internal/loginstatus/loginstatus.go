// Package loginstatus reads the visitor's login state from the backend's
// /login-info fragment and, for logged-in visitors, the nickname form.
package loginstatus

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Element IDs the /login-info fragment uses.
const (
	statusID = "isLoggedIn"
	logoutID = "logoutUrl"
	loginID  = "loginUrl"
)

// Source fetches the login fragments from the backend.
type Source interface {
	LoginInfo(ctx context.Context) (string, error)
	Nickname(ctx context.Context) (string, error)
}

// MissingElementError reports a fragment without an element the page relies on.
type MissingElementError struct {
	ID string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("login fragment has no #%s element", e.ID)
}

// Status is the parsed login state.
type Status struct {
	LoggedIn  bool     `json:"logged_in"`
	Message   string   `json:"message"`
	Details   []string `json:"details,omitempty"`
	LoginURL  string   `json:"login_url,omitempty"`
	LogoutURL string   `json:"logout_url,omitempty"`

	// NicknameForm is the raw /nickname fragment. It is only fetched for
	// logged-in visitors.
	NicknameForm string `json:"nickname_form,omitempty"`
}

// Fetch loads and parses /login-info, then /nickname if the visitor is
// logged in.
func Fetch(ctx context.Context, src Source) (*Status, error) {
	fragment, err := src.LoginInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching login info: %w", err)
	}

	st, err := Parse(fragment)
	if err != nil {
		return nil, err
	}

	if !st.LoggedIn {
		return st, nil
	}

	form, err := src.Nickname(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching nickname form: %w", err)
	}
	st.NicknameForm = strings.TrimSpace(form)
	return st, nil
}

// Parse reads a /login-info fragment.
//
// The visitor is logged in when the fragment carries a logout link, or
// failing that, when the status text does not say "not logged in".
func Parse(fragment string) (*Status, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing login info: %w", err)
	}

	status := findByID(doc, statusID)
	if status == nil {
		return nil, &MissingElementError{ID: statusID}
	}

	st := &Status{Message: textContent(status)}
	if n := findByID(doc, logoutID); n != nil {
		st.LogoutURL = firstHref(n)
	}
	if n := findByID(doc, loginID); n != nil {
		st.LoginURL = firstHref(n)
	}

	for _, p := range findAll(doc, "p") {
		if attr(p, "id") != "" {
			continue
		}
		if text := textContent(p); text != "" {
			st.Details = append(st.Details, text)
		}
	}

	switch {
	case st.LogoutURL != "":
		st.LoggedIn = true
	case st.LoginURL != "":
		st.LoggedIn = false
	default:
		st.LoggedIn = !strings.Contains(strings.ToLower(st.Message), "not logged in")
	}

	return st, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findAll(c, tag)...)
	}
	return out
}

func firstHref(n *html.Node) string {
	for _, a := range findAll(n, "a") {
		if href := attr(a, "href"); href != "" {
			return href
		}
	}
	return ""
}

// textContent returns the node's text with whitespace collapsed.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
