// Command smoke runs the whole pipeline against an in-process mock of the
// enrichment service, then again with the service stopped to show the
// fallbacks. It needs a local Chrome for the PDF step.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/catalog"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	"resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"
)

func startMockEnrichment() (*http.Server, string, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/extract", func(w http.ResponseWriter, r *http.Request) {
		if _, _, err := r.FormFile("file"); err != nil {
			http.Error(w, `{"error":"file is required"}`, http.StatusBadRequest)
			return
		}
		data := model.SampleResume()
		data.PersonalInfo.FullName = "Smoke Test"
		writeJSON(w, data)
	})
	mux.HandleFunc("/enhance", func(w http.ResponseWriter, r *http.Request) {
		var in model.ResumeData
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		out := in
		out.Summary = "Seasoned " + strings.TrimSpace(in.Summary)
		writeJSON(w, map[string]any{
			"originalResume": in,
			"enhancedResume": out,
			"improvements":   []string{"Stronger opening line"},
			"aiSuggestions":  []string{},
			"model":          "mock",
		})
	})
	mux.HandleFunc("/ats-score", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"atsScore": 87, "suggestions": []string{"Mention Go generics"}})
	})
	mux.HandleFunc("/feedback", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"ats_score": 80, "completeness": map[string]bool{"summary": true}})
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, "", err
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("mock enrichment server failed", "error", err)
		}
	}()
	return srv, "http://" + ln.Addr().String(), nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newProcessor(baseURL string) *usecase.Processor {
	c := catalog.New(catalog.Bundle())
	return usecase.NewProcessor(
		c,
		render.NewRenderer(c, false),
		infrastructure.NewChromedpConverter(infrastructure.ChromeOptions{
			ExecPath:  os.Getenv("CHROME_PATH"),
			RemoteURL: os.Getenv("CHROME_URL"),
		}),
		usecase.NewGateway(ai.NewClient(baseURL, 2*time.Second, 5*time.Second)),
	)
}

// runEnrichment exercises every gateway operation and reports whether each
// one fell back.
func runEnrichment(ctx context.Context, p *usecase.Processor) model.ResumeData {
	ext := p.Extract(ctx, strings.NewReader("%PDF-1.4 smoke"), "smoke.pdf", "application/pdf")
	fmt.Printf("extract:  fallback=%-5v name=%q\n", ext.Fallback, ext.Value.PersonalInfo.FullName)

	enh := p.Enhance(ctx, ext.Value)
	fmt.Printf("enhance:  fallback=%-5v improvements=%d\n", enh.Fallback, len(enh.Value.Improvements))

	sc := p.Score(ctx, enh.Value.EnhancedResume, "Senior Go engineer")
	fmt.Printf("score:    fallback=%-5v score=%d\n", sc.Fallback, sc.Value.Score)

	fb, err := p.Feedback(ctx, enh.Value.EnhancedResume)
	if err != nil {
		fmt.Printf("feedback: error=%v\n", err)
	} else {
		fmt.Printf("feedback: atsScore=%d\n", fb.AtsScore)
	}
	return enh.Value.EnhancedResume
}

func main() {
	logger.Setup("warn", "text")

	srv, baseURL, err := startMockEnrichment()
	if err != nil {
		fmt.Printf("start mock enrichment: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	p := newProcessor(baseURL)

	fmt.Println("== enrichment service up")
	data := runEnrichment(ctx, p)

	_ = srv.Shutdown(context.Background())
	fmt.Println("== enrichment service down")
	runEnrichment(ctx, p)

	fmt.Println("== pdf")
	if _, err := p.RenderResume(ctx, data, "does-not-exist"); err != nil {
		fmt.Printf("unknown template: %v\n", err)
	}
	pdf, err := p.RenderResume(ctx, data, "modern-professional")
	if err != nil {
		fmt.Printf("render failed: %v\n", err)
		os.Exit(1)
	}
	if err := infrastructure.ValidatePDF(pdf); err != nil {
		fmt.Printf("invalid pdf: %v\n", err)
		os.Exit(1)
	}
	out := filepath.Join(os.TempDir(), usecase.GenerateFilename(data.PersonalInfo.FullName))
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		fmt.Printf("write pdf: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(pdf))
}
