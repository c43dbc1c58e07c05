package validation

import "testing"

func TestGenerateRequest_Valid(t *testing.T) {
	v := New()

	req := GenerateRequest{Prompt: "Create a basic portfolio website"}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestGenerateRequest_EmptyPrompt(t *testing.T) {
	v := New()

	req := GenerateRequest{Prompt: ""}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for empty prompt, got nil")
	}
}

func TestDownloadRequest_MissingCode(t *testing.T) {
	v := New()

	req := DownloadRequest{}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for missing code, got nil")
	}
}

func TestStatusRequest(t *testing.T) {
	v := New()

	if err := v.Struct(StatusRequest{ClientName: "backend_test_client"}); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
	if err := v.Struct(StatusRequest{}); err == nil {
		t.Fatal("expected validation error for missing client_name, got nil")
	}
}
