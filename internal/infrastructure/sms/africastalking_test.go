package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

func TestGateway_Send_DemoMode(t *testing.T) {
	gw := NewGateway(Config{DemoMode: true}, zerolog.Nop())

	result, err := gw.Send(context.Background(), "+254712345678", "hello")
	if err != nil {
		t.Fatalf("demo send failed: %v", err)
	}
	if !strings.HasPrefix(result.MessageID, "demo_") {
		t.Fatalf("expected demo message id, got %q", result.MessageID)
	}
}

func TestGateway_Send_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apiKey") != "test-key" {
			t.Errorf("api key header missing")
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("bad form: %v", err)
		}
		if r.PostForm.Get("to") != "+254712345678" || r.PostForm.Get("from") != "AFYA_KUU" {
			t.Errorf("unexpected form: %v", r.PostForm)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"SMSMessageData":{"Recipients":[{"status":"Success","messageId":"ATXid_42","cost":"KES 0.80"}]}}`))
	}))
	defer srv.Close()

	gw := NewGateway(Config{
		APIKey:   "test-key",
		Username: "sandbox",
		SenderID: "AFYA_KUU",
		BaseURL:  srv.URL,
	}, zerolog.Nop())

	result, err := gw.Send(context.Background(), "+254712345678", "Your appointment is tomorrow.")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if result.MessageID != "ATXid_42" || result.Cost != "KES 0.80" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestGateway_Send_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"SMSMessageData":{"Recipients":[{"status":"InvalidPhoneNumber"}]}}`))
	}))
	defer srv.Close()

	gw := NewGateway(Config{BaseURL: srv.URL}, zerolog.Nop())
	if _, err := gw.Send(context.Background(), "+254712345678", "x"); err != domain.ErrSMSRejected {
		t.Fatalf("expected ErrSMSRejected, got %v", err)
	}
}

func TestGateway_Send_NoRecipients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"SMSMessageData":{"Recipients":[]}}`))
	}))
	defer srv.Close()

	gw := NewGateway(Config{BaseURL: srv.URL}, zerolog.Nop())
	if _, err := gw.Send(context.Background(), "+254712345678", "x"); err != domain.ErrSMSRejected {
		t.Fatalf("expected ErrSMSRejected, got %v", err)
	}
}
