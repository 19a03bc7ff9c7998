package digest

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"newsroom/models"
)

const excerptLength = 200

// emailTemplate mirrors the markup of the weekly newsletter: maroon
// header, one table row per post with image, date, optional location,
// excerpt and a Learn More button, then the subscription footer.
var emailTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 0; margin: 0;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white;">
      <div style="background-color: #a82434; color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0;">
        <h1 style="margin: 0;">This Week's Top 5 Events</h1>
        <p style="margin-top: 10px;">Curated just for you by SCU Newsroom</p>
      </div>
{{- range .Posts}}
      <div style="padding: 20px; border-bottom: 1px solid #ddd;">
        <table width="100%" cellpadding="0" cellspacing="0" role="presentation">
          <tr>
            <td width="120" valign="top" style="padding-right: 20px;">
{{- if .ImageURL}}
              <img src="{{.ImageURL}}" alt="{{.Title}}" width="120" style="border-radius: 8px; display: block;" />
{{- end}}
            </td>
            <td valign="top" style="font-family: Arial, sans-serif;">
              <h2 style="margin: 0 0 8px 0; color: #000;">{{.Title}}</h2>
              <p style="margin: 0;"><strong>Date:</strong> {{.Date}}</p>
{{- if .Location}}
              <p style="margin: 0;"><strong>Location:</strong> {{.Location}}</p>
{{- end}}
              <p style="margin: 8px 0;">{{.Excerpt}}</p>
              <a href="{{.Link}}" style="display: inline-block; margin-top: 10px; background-color: #a82434; color: white; text-decoration: none; padding: 10px 16px; border-radius: 4px;">Learn More</a>
            </td>
          </tr>
        </table>
      </div>
{{- end}}
      <div style="padding: 20px; text-align: center; font-size: 12px; color: #666;">
        <p>You&rsquo;re receiving this email because you subscribed to weekly updates from SCU Newsroom.</p>
        <p>
          <a href="{{.PreferencesURL}}" style="color: #a82434;">Unsubscribe</a> |
          <a href="{{.PreferencesURL}}" style="color: #a82434;">Manage Preferences</a>
        </p>
      </div>
    </div>
  </body>
</html>
`))

type emailPost struct {
	Title    string
	Date     string
	Location string
	Excerpt  string
	ImageURL string
	Link     string
}

type emailData struct {
	Posts          []emailPost
	PreferencesURL string
}

// RenderHTML turns a digest selection into the email body. Rendering is
// pure: either the whole document renders or an error comes back and no
// partial email leaves the process.
func RenderHTML(posts []models.Post, siteBaseURL string) (string, error) {
	data := emailData{
		Posts:          make([]emailPost, 0, len(posts)),
		PreferencesURL: siteBaseURL + "/preferences",
	}
	for _, p := range posts {
		data.Posts = append(data.Posts, emailPost{
			Title:    p.Title,
			Date:     formatEventDate(p.EventDate),
			Location: p.Location,
			Excerpt:  excerpt(p.Content),
			ImageURL: p.ImageURL,
			Link:     fmt.Sprintf("%s/posts/%s", siteBaseURL, p.ID.Hex()),
		})
	}

	var b strings.Builder
	if err := emailTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render digest email: %w", err)
	}
	return b.String(), nil
}

func formatEventDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("Mon, Jan 2, 2006")
}

func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}
