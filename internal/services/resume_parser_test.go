package services

import (
	"strings"
	"testing"
)

func TestExtractFromBytes_PlainText(t *testing.T) {
	svc := NewResumeParserService()

	body := "anita desai\nCGPA 8.2/10\npython, sql"
	got, err := svc.ExtractFromBytes([]byte(body), "resume.txt")
	if err != nil {
		t.Fatalf("ExtractFromBytes() error = %v", err)
	}
	if got != body {
		t.Errorf("ExtractFromBytes() = %q, want %q", got, body)
	}
}

func TestExtractFromBytes_UnsupportedFormat(t *testing.T) {
	svc := NewResumeParserService()

	if _, err := svc.ExtractFromBytes([]byte("x"), "resume.png"); err == nil {
		t.Error("ExtractFromBytes(.png): expected error")
	}
}

func TestExtractFromBytes_CorruptPDF(t *testing.T) {
	svc := NewResumeParserService()

	if _, err := svc.ExtractFromBytes([]byte("not a pdf at all"), "resume.pdf"); err == nil {
		t.Error("ExtractFromBytes on non-PDF bytes: expected error")
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	svc := NewResumeParserService()

	if _, err := svc.ExtractText("/nonexistent/resume.pdf"); err == nil {
		t.Error("ExtractText on missing file: expected error")
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "blank lines dropped",
			in:   "  first line \n\n\n second line\t\n",
			want: "first line\nsecond line",
		},
		{
			name: "already clean",
			in:   "one\ntwo",
			want: "one\ntwo",
		},
		{
			name: "empty",
			in:   "   \n \n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDocxTagStripping(t *testing.T) {
	xml := `<w:p><w:r><w:t>ravi kumar</w:t></w:r></w:p><w:p><w:r><w:t>python, sql</w:t></w:r></w:p>`
	content := strings.ReplaceAll(xml, "</w:p>", "\n")
	content = docxTagPattern.ReplaceAllString(content, " ")
	got := CleanText(content)

	want := "ravi kumar\npython, sql"
	if got != want {
		t.Errorf("stripped docx content = %q, want %q", got, want)
	}
}
