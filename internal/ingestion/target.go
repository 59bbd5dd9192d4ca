// Package ingestion turns a target role URL or text file into the clean
// plain-text description the revision prompts consume.
package ingestion

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jonathan/resume-reviser/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
	// ErrEmptyTarget is returned when the source yields no usable text
	ErrEmptyTarget = fmt.Errorf("target description is empty")
)

// TargetFromURL fetches a role posting and reduces it to clean text.
// Platform detection picks selectors tuned to the job board; when useBrowser
// is set and the plain fetch yields too little text, the page is re-rendered
// in a headless browser before extraction.
func TargetFromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, error) {
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	text, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(text))
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		if verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering...",
				len(text), fetch.MinContentLength)
		}

		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			// Keep the HTTP content when the browser is unavailable
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			text = rendered
			if verbose {
				log.Printf("[VERBOSE] Browser extracted text: %d chars", len(text))
			}
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyTarget, urlStr)
	}
	return cleaned, nil
}

// TargetFromFile reads a role description from a local text file.
func TargetFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read target file: %w", err)
	}

	cleaned := CleanText(string(data))
	if strings.TrimSpace(cleaned) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyTarget, path)
	}
	return cleaned, nil
}
