package lib

import (
	"fmt"
	"net/http"
	"sync"
	"time"
)

const checkerUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

/*
	Verifies that datasheet links in generated part lists still resolve.
	Vendors move datasheets around; a stale link in a released symbol
	library is worse than no link. Requests are rate limited so a full
	series check does not hammer the vendor site.
*/
type URLChecker struct {
	client *http.Client
	lock   *sync.Mutex
}

func NewURLChecker() *URLChecker {
	return &URLChecker{
		client: &http.Client{Timeout: 10 * time.Second},
		lock:   &sync.Mutex{},
	}
}

func (c *URLChecker) check(url string) error {
	c.lock.Lock()
	go func() {
		defer c.lock.Unlock()
		time.Sleep(1500 * time.Millisecond)
	}()

	req, err := http.NewRequest("HEAD", url, nil)
	if err != nil {
		return err
	}
	req.Header.Add("User-Agent", checkerUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s: %s", url, resp.Status)
	}

	return nil
}

/*
	Check the datasheet URL of every part, deduplicated: a series shares
	one datasheet across hundreds of part numbers. Returns the URLs that
	failed and the first error per URL.
*/
func (c *URLChecker) CheckParts(parts []*PartInfo) map[string]error {
	failed := make(map[string]error)
	checked := make(map[string]bool)

	for _, part := range parts {
		if part.Datasheet == "" || checked[part.Datasheet] {
			continue
		}
		checked[part.Datasheet] = true

		if err := c.check(part.Datasheet); err != nil {
			failed[part.Datasheet] = err
		}
	}

	return failed
}
