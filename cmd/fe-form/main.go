package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	feform "github.com/Jekson949/fe-form"
	"github.com/Jekson949/fe-form/pkg/catalog"
	"github.com/Jekson949/fe-form/pkg/emailcheck"
	"github.com/Jekson949/fe-form/pkg/renderers/tui"
	"github.com/Jekson949/fe-form/pkg/session"
)

func main() {
	var (
		rendererFlag = flag.String("renderer", "text", "Preview renderer to use (text, html)")
		catalogFlag  = flag.String("catalog", "", "Optional path to a framework/version catalog (YAML or JSON)")
		delayFlag    = flag.Duration("check-delay", emailcheck.DefaultDelay, "Simulated email lookup delay")
		outputFlag   = flag.String("output", "", "Optional file path for the rendered preview (stdout when empty)")
	)
	flag.Parse()

	ctx := context.Background()

	cat := feform.DefaultCatalog()
	if *catalogFlag != "" {
		loaded, err := catalog.LoadFile(*catalogFlag)
		if err != nil {
			log.Fatalf("load catalog: %v", err)
		}
		cat = loaded
	}

	formDef, err := feform.LoadDefinition(ctx)
	if err != nil {
		log.Fatalf("load form definition: %v", err)
	}
	if err := feform.VerifyDefinition(formDef, cat); err != nil {
		log.Fatalf("verify form definition: %v", err)
	}

	registry, err := feform.NewPreviewRegistry()
	if err != nil {
		log.Fatalf("preview registry: %v", err)
	}
	if !registry.Has(*rendererFlag) {
		log.Fatalf("renderer %q not registered (available: %v)", *rendererFlag, registry.List())
	}

	sess := feform.NewSession(
		session.WithCatalog(cat),
		session.WithChecker(emailcheck.NewSimulatedDirectory(emailcheck.WithDelay(*delayFlag))),
	)

	runner, err := tui.NewRunner(sess, formDef)
	if err != nil {
		log.Fatalf("runner: %v", err)
	}

	started := time.Now()
	p, err := runner.Run(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		log.Fatalf("run form: %v", err)
	}

	renderer, err := registry.Get(*rendererFlag)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	preview, err := renderer.Render(ctx, p)
	if err != nil {
		log.Fatalf("render preview: %v", err)
	}

	if *outputFlag == "" {
		fmt.Println(string(preview))
		return
	}
	if err := writeFile(*outputFlag, preview); err != nil {
		log.Fatalf("write output: %v", err)
	}
	log.Printf("wrote %d bytes to %s (session took %s)", len(preview), *outputFlag, time.Since(started).Round(time.Millisecond))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
