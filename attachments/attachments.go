package attachments

import (
	"reflect"

	"github.com/jonathanwoahn/xapi-types/misc/langmap"
)

// usageType of attachments carrying a JWS signature of the Statement.
const UsageTypeSignature = "http://adlnet.gov/expapi/attachments/signature"

// Attachment is a header of a digital artifact attached to a Statement.
//
// The artifact itself travels outside the Statement (e.g. as a part of multipart/mixed request)
// or is retrievable from FileUrl.
type Attachment struct {
	// IRI. Identifies the usage of this Attachment.
	//
	// For example, "completion certificate" attachments share an IRI coined for that usage.
	UsageType string `json:"usageType,omitempty" yaml:"usageType,omitempty"`

	// Display name (title) of this Attachment.
	Display langmap.LanguageMap `json:"display,omitempty" yaml:"display,omitempty"`

	// A description of the Attachment.
	Description langmap.LanguageMap `json:"description,omitempty" yaml:"description,omitempty"`

	// Internet Media Type of the Attachment (RFC 2046).
	ContentType string `json:"contentType" yaml:"contentType"`

	// The length of the Attachment data in octets.
	Length int64 `json:"length" yaml:"length"`

	// The SHA-2 hash of the Attachment data, hex encoded.
	// It is required even if FileUrl is specified.
	Sha2 string `json:"sha2" yaml:"sha2"`

	// IRL at which the Attachment data can be retrieved, or from which it used to be retrievable.
	FileUrl string `json:"fileUrl,omitempty" yaml:"fileUrl,omitempty"`

	// Inline content, used by tracking libraries before the data is sent apart.
	Content []interface{} `json:"content,omitempty" yaml:"content,omitempty"`
}

func (a Attachment) Equal(o Attachment) bool {
	return a.UsageType == o.UsageType &&
		a.Display.Equal(o.Display) &&
		a.Description.Equal(o.Description) &&
		a.ContentType == o.ContentType &&
		a.Length == o.Length &&
		a.Sha2 == o.Sha2 &&
		a.FileUrl == o.FileUrl &&
		(len(a.Content) == 0 && len(o.Content) == 0 || reflect.DeepEqual(a.Content, o.Content))
}
