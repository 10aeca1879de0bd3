package utils

import (
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// CheckVideoLink probes an external video URL with a HEAD request and
// logs when it looks dead. Called from a goroutine after add-link; the
// link is stored either way.
func CheckVideoLink(link string) {
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().Head(link)
	if err != nil {
		log.Printf("Video link unreachable: %s (%v)", link, err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Video link returned %d: %s", resp.StatusCode(), link)
	}
}
