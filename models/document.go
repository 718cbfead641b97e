package models

// Defaults of the hyperlink demonstration document.
const (
	DefaultDocumentPath  = "test_docx_links.docx"
	DefaultDocumentTitle = "DOCX hyperlink test"
	DefaultLinkURL       = "https://www.example.com"
)
