// Package views provides minimal default templ components for a scribe site.
// Sites that want their own look supply a ViewFuncs of their own components;
// these defaults render plain, functional HTML.
package views

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/emlloyd/scribe"
)

// Default returns a ViewFuncs rendering the built-in pages for cfg's site.
func Default(cfg scribe.Config) scribe.ViewFuncs {
	v := &defaultViews{cfg: cfg}
	return scribe.ViewFuncs{
		Home:        v.home,
		About:       v.about,
		Contact:     v.contact,
		Post:        v.post,
		Login:       v.login,
		Dashboard:   v.dashboard,
		Edit:        v.edit,
		NotFound:    v.notFound,
		ServerError: v.serverError,
	}
}

type defaultViews struct {
	cfg scribe.Config
}

// page wraps body content in the shared layout.
func (v *defaultViews) page(title string, body func(w io.Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>%s — %s</title></head><body>",
			html.EscapeString(title), html.EscapeString(v.cfg.SiteName))
		fmt.Fprintf(w, "<nav><a href=\"/\">%s</a> <a href=\"/about\">About</a> <a href=\"/contact\">Contact</a></nav>",
			html.EscapeString(v.cfg.SiteName))
		body(w)
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func writeFlashes(w io.Writer, flashes []string) {
	for _, f := range flashes {
		fmt.Fprintf(w, "<p class=\"flash\">%s</p>", html.EscapeString(f))
	}
}

func (v *defaultViews) home(page scribe.Page) templ.Component {
	return v.page("Home", func(w io.Writer) {
		io.WriteString(w, "<ul class=\"posts\">")
		for _, p := range page.Posts {
			fmt.Fprintf(w, "<li><a href=\"/post/%s\">%s</a> — %s</li>",
				html.EscapeString(p.Slug), html.EscapeString(p.Title), html.EscapeString(p.Tagline))
		}
		io.WriteString(w, "</ul>")
		fmt.Fprintf(w, "<a href=\"%s\">&laquo; Previous</a> <a href=\"%s\">Next &raquo;</a>",
			html.EscapeString(page.Prev), html.EscapeString(page.Next))
	})
}

func (v *defaultViews) about() templ.Component {
	return v.page("About", func(w io.Writer) {
		fmt.Fprintf(w, "<h1>About</h1><p>%s</p>", html.EscapeString(v.cfg.SiteTagline))
	})
}

func (v *defaultViews) contact(form scribe.ContactForm, errs map[string]string, flashes []string, csrf string) templ.Component {
	return v.page("Contact", func(w io.Writer) {
		writeFlashes(w, flashes)
		io.WriteString(w, "<h1>Contact</h1><form method=\"post\" action=\"/contact\">")
		fmt.Fprintf(w, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", html.EscapeString(csrf))
		field := func(name, label, value string) {
			fmt.Fprintf(w, "<label>%s <input name=\"%s\" value=\"%s\"></label>",
				html.EscapeString(label), name, html.EscapeString(value))
			if msg, ok := errs[name]; ok {
				fmt.Fprintf(w, "<span class=\"error\">%s</span>", html.EscapeString(msg))
			}
		}
		field("name", "Name", form.Name)
		field("email", "Email", form.Email)
		field("phone", "Phone", form.Phone)
		fmt.Fprintf(w, "<label>Message <textarea name=\"message\">%s</textarea></label>", html.EscapeString(form.Message))
		if msg, ok := errs["message"]; ok {
			fmt.Fprintf(w, "<span class=\"error\">%s</span>", html.EscapeString(msg))
		}
		io.WriteString(w, "<button type=\"submit\">Send</button></form>")
	})
}

func (v *defaultViews) post(post *scribe.Post) templ.Component {
	if post == nil {
		return v.page("Post", func(w io.Writer) {
			io.WriteString(w, "<p>This post does not exist.</p>")
		})
	}
	return v.page(post.Title, func(w io.Writer) {
		fmt.Fprintf(w, "<article><h1>%s</h1><p><em>%s</em></p>",
			html.EscapeString(post.Title), html.EscapeString(post.Tagline))
		if post.ImageFile != "" {
			fmt.Fprintf(w, "<img src=\"/public/uploads/%s\" alt=\"\">", html.EscapeString(post.ImageFile))
		}
		fmt.Fprintf(w, "<div>%s</div></article>", html.EscapeString(post.Content))
	})
}

func (v *defaultViews) login(csrf string) templ.Component {
	return v.page("Login", func(w io.Writer) {
		io.WriteString(w, "<h1>Admin Login</h1><form method=\"post\" action=\"/dashboard\">")
		fmt.Fprintf(w, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", html.EscapeString(csrf))
		io.WriteString(w, "<label>Username <input name=\"uname\"></label>")
		io.WriteString(w, "<label>Password <input type=\"password\" name=\"pass\"></label>")
		io.WriteString(w, "<button type=\"submit\">Sign in</button></form>")
	})
}

func (v *defaultViews) dashboard(posts []scribe.Post, flashes []string, csrf string) templ.Component {
	return v.page("Dashboard", func(w io.Writer) {
		writeFlashes(w, flashes)
		io.WriteString(w, "<h1>Dashboard</h1><p><a href=\"/edit/0\">New post</a> <a href=\"/logout\">Log out</a></p>")
		io.WriteString(w, "<table>")
		for _, p := range posts {
			fmt.Fprintf(w, "<tr><td>%d</td><td>%s</td><td><a href=\"/edit/%d\">Edit</a></td><td><a href=\"/delete/%d\">Delete</a></td></tr>",
				p.ID, html.EscapeString(p.Title), p.ID, p.ID)
		}
		io.WriteString(w, "</table>")
		io.WriteString(w, "<form method=\"post\" action=\"/uploader\" enctype=\"multipart/form-data\">")
		fmt.Fprintf(w, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", html.EscapeString(csrf))
		io.WriteString(w, "<input type=\"file\" name=\"file1\"><button type=\"submit\">Upload</button></form>")
	})
}

func (v *defaultViews) edit(post scribe.Post, csrf string) templ.Component {
	title := "New Post"
	if post.ID != 0 {
		title = "Edit Post"
	}
	return v.page(title, func(w io.Writer) {
		fmt.Fprintf(w, "<h1>%s</h1><form method=\"post\" action=\"/edit/%d\">", title, post.ID)
		fmt.Fprintf(w, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", html.EscapeString(csrf))
		fmt.Fprintf(w, "<label>Title <input name=\"title\" value=\"%s\"></label>", html.EscapeString(post.Title))
		fmt.Fprintf(w, "<label>Tagline <input name=\"tline\" value=\"%s\"></label>", html.EscapeString(post.Tagline))
		fmt.Fprintf(w, "<label>Slug <input name=\"slug\" value=\"%s\"></label>", html.EscapeString(post.Slug))
		fmt.Fprintf(w, "<label>Image file <input name=\"img_file\" value=\"%s\"></label>", html.EscapeString(post.ImageFile))
		fmt.Fprintf(w, "<label>Content <textarea name=\"content\">%s</textarea></label>", html.EscapeString(post.Content))
		io.WriteString(w, "<button type=\"submit\">Save</button></form>")
	})
}

func (v *defaultViews) notFound() templ.Component {
	return v.page("Not Found", func(w io.Writer) {
		io.WriteString(w, "<h1>404</h1><p>Page not found.</p>")
	})
}

func (v *defaultViews) serverError() templ.Component {
	return v.page("Error", func(w io.Writer) {
		io.WriteString(w, "<h1>500</h1><p>Something went wrong.</p>")
	})
}
