package entity

import "encoding/json"

// AssetRef is a reference to a binary asset of a project: either a file
// pending upload or the URL it is fetchable from once stored. A ref is
// exactly one of the two; it switches from pending to stored once, at
// successful persistence, and never holds both.
type AssetRef struct {
	filename    string
	content     []byte
	contentType string
	url         string
}

// PendingAsset returns a ref to a file awaiting upload.
func PendingAsset(filename string, content []byte, contentType string) AssetRef {
	return AssetRef{filename: filename, content: content, contentType: contentType}
}

// StoredAsset returns a ref to an already-persisted asset.
func StoredAsset(url string) AssetRef {
	return AssetRef{url: url}
}

// Pending reports whether the ref still awaits upload.
func (a AssetRef) Pending() bool { return a.url == "" }

// Stored reports whether the ref points at a persisted asset.
func (a AssetRef) Stored() bool { return a.url != "" }

// Filename returns the original filename of a pending ref.
func (a AssetRef) Filename() string { return a.filename }

// Content returns the bytes of a pending ref.
func (a AssetRef) Content() []byte { return a.content }

// ContentType returns the MIME type of a pending ref.
func (a AssetRef) ContentType() string { return a.contentType }

// URL returns the address of a stored ref, empty while pending.
func (a AssetRef) URL() string { return a.url }

// MarshalJSON renders a stored ref as its URL. Pending refs serialize as
// null: file bytes never travel through JSON responses.
func (a AssetRef) MarshalJSON() ([]byte, error) {
	if a.Pending() {
		return []byte("null"), nil
	}

	return json.Marshal(a.url)
}
