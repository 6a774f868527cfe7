package markup

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// plainText strips any markup from label text so the rendered label shows
// exactly the visible words. The result is unescaped because the template
// engine escapes on output.
func plainText(raw string) string {
	if !strings.ContainsAny(raw, "<>&") {
		return raw
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(textPolicy.Sanitize(raw))
}
