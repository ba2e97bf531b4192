package views

import (
	"encoding/json"
	"testing"
)

func TestWebsiteJsonLD(t *testing.T) {
	cfg := SiteConfig{
		Name:        "Test Blog",
		URL:         "https://example.com",
		Description: "A test blog",
		Author:      "Jane",
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(WebsiteJsonLD(cfg)), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if data["url"] != "https://example.com" {
		t.Errorf("url = %v, want the configured site URL", data["url"])
	}
	if data["name"] != "Test Blog" {
		t.Errorf("name = %v", data["name"])
	}
	author, ok := data["author"].(map[string]interface{})
	if !ok || author["name"] != "Jane" {
		t.Errorf("author = %v", data["author"])
	}
}

func TestWebsiteJsonLDOmitsEmptyFields(t *testing.T) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(WebsiteJsonLD(SiteConfig{Name: "B", URL: "https://b.example"})), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := data["description"]; ok {
		t.Error("empty description should be omitted")
	}
	if _, ok := data["author"]; ok {
		t.Error("empty author should be omitted")
	}
}
