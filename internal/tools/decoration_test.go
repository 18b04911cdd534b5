package tools

import "testing"

// --- GetMarkdownTool ---

func TestGetMarkdownTool_DefaultDecorationEmpty(t *testing.T) {
	_, cleanup := setupTestSite(t)
	defer cleanup()

	result := callTool(t, NewGetMarkdownTool().Handle, map[string]interface{}{})
	out := decodeResult(t, result)

	if out["decoration"] != "light" {
		t.Errorf("decoration = %v, want light (default)", out["decoration"])
	}
	if templates := out["templates"].(map[string]interface{}); len(templates) != 0 {
		t.Errorf("templates = %v, want empty for missing markdown dir", templates)
	}
}

func TestGetMarkdownTool_ReadsActiveDecoration(t *testing.T) {
	tmpDir, cleanup := setupTestSite(t)
	defer cleanup()
	writeSiteFile(t, tmpDir, "src/settings.yml", "decoration: dark\n")
	writeSiteFile(t, tmpDir, "src/decoration/dark/markdown/h1.html", "<h1 class=\"dark\">")

	result := callTool(t, NewGetMarkdownTool().Handle, map[string]interface{}{})
	out := decodeResult(t, result)

	if out["decoration"] != "dark" {
		t.Errorf("decoration = %v, want dark", out["decoration"])
	}
	templates := out["templates"].(map[string]interface{})
	if templates["h1.html"] != "<h1 class=\"dark\">" {
		t.Errorf("templates = %v", templates)
	}
}

// --- GetTemplateTool ---

func TestGetTemplateTool_DefaultsToIndex(t *testing.T) {
	tmpDir, cleanup := setupTestSite(t)
	defer cleanup()
	writeSiteFile(t, tmpDir, "src/decoration/light/templates/index.html", "<html></html>")

	result := callTool(t, NewGetTemplateTool().Handle, map[string]interface{}{})
	out := decodeResult(t, result)

	if out["templateExists"] != true {
		t.Fatalf("templateExists = %v, want true", out["templateExists"])
	}
	if out["template"] != "<html></html>" {
		t.Errorf("template = %v", out["template"])
	}
}

func TestGetTemplateTool_MissingTemplateIsAbsenceNotError(t *testing.T) {
	_, cleanup := setupTestSite(t)
	defer cleanup()

	result := callTool(t, NewGetTemplateTool().Handle, map[string]interface{}{"template": "post.html"})
	if isErrorResult(result) {
		t.Fatal("missing template should not be a tool error")
	}

	out := decodeResult(t, result)
	if out["templateExists"] != false {
		t.Errorf("templateExists = %v, want false", out["templateExists"])
	}
	if out["template"] != nil {
		t.Errorf("template = %v, want null", out["template"])
	}
}

// --- GetComponentTool ---

func TestGetComponentTool_RequiresComponent(t *testing.T) {
	_, cleanup := setupTestSite(t)
	defer cleanup()

	result := callTool(t, NewGetComponentTool().Handle, map[string]interface{}{})
	if !isErrorResult(result) {
		t.Fatal("expected validation error for missing component")
	}
}

func TestGetComponentTool_PartialComponent(t *testing.T) {
	tmpDir, cleanup := setupTestSite(t)
	defer cleanup()
	writeSiteFile(t, tmpDir, "src/decoration/light/components/card/template.html", "<div/>")
	writeSiteFile(t, tmpDir, "src/decoration/light/components/card/example.md", "usage")
	// example.html deliberately absent.

	result := callTool(t, NewGetComponentTool().Handle, map[string]interface{}{"component": "card"})
	out := decodeResult(t, result)

	if out["componentExists"] != true {
		t.Errorf("componentExists = %v, want true", out["componentExists"])
	}
	if out["template"] != "<div/>" {
		t.Errorf("template = %v", out["template"])
	}
	if out["exampleMd"] != "usage" {
		t.Errorf("exampleMd = %v", out["exampleMd"])
	}
	if out["exampleHtml"] != nil {
		t.Errorf("exampleHtml = %v, want null", out["exampleHtml"])
	}
}

func TestGetComponentTool_MissingComponent(t *testing.T) {
	_, cleanup := setupTestSite(t)
	defer cleanup()

	result := callTool(t, NewGetComponentTool().Handle, map[string]interface{}{"component": "ghost"})
	out := decodeResult(t, result)

	if out["componentExists"] != false {
		t.Errorf("componentExists = %v, want false", out["componentExists"])
	}
}
