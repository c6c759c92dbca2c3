package fetcher

/***
Latin Library page outline follows.
Title: <title> tag, usually "AUTHOR: WORK" or just the work name.
Author: first <h1>, when present; index pages carry only link tables.
Body: sequence of <p> elements; navigation rows use the classes
"pagehead"/"pagefoot"/"internal_navigation" and are discarded.
Text pages link back to their author index, so crawl depth 2 from an
author page covers a whole author.
***/

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"

	"github.com/yknishimuta/nlpo-toolkit/content"
	"github.com/yknishimuta/nlpo-toolkit/entities/languages"
)

type LatinLibraryFetcher struct {
	FetcherOptions *FetcherOptions
}

var llDomains = []string{
	"thelatinlibrary.com",
	"www.thelatinlibrary.com",
}

var llDefaultDeparturePoint = "https://www.thelatinlibrary.com/"
var llCanonName = "The Latin Library"

var llCacheDir = "./cache/latinlibrary_cache"

var llSuccessful = 0

func llFetchLogf(format string, a ...interface{}) (n int, err error) {
	return fmt.Printf("[LATINLIBRARY FETCHER] "+format, a...)
}

func (f *LatinLibraryFetcher) SetFetcherOptions(fetcherOptions *FetcherOptions) {
	f.FetcherOptions = fetcherOptions
}

func (f *LatinLibraryFetcher) GetFetcherOptions() *FetcherOptions {
	return f.FetcherOptions
}

func (f *LatinLibraryFetcher) Fetch(fetchOptions FetchOptions) error {
	llSuccessful = 0

	repo := f.GetFetcherOptions().Repository

	c := colly.NewCollector(
		colly.AllowedDomains(llDomains...),
		colly.CacheDir(llCacheDir),
		colly.IgnoreRobotsTxt(),
		colly.MaxDepth(fetchOptions.MaxDepth),
		colly.Async(fetchOptions.Async),
	)

	if fetchOptions.Parallelism > 1 {
		c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: fetchOptions.Parallelism})
	}

	if err := c.SetStorage(repo); err != nil {
		llFetchLogf("Error setting storage: %v\n", err)
		return err
	}

	c.OnRequest(func(r *colly.Request) {
		llFetchLogf("VISITING: %s\n", r.URL.String())
	})

	c.OnResponse(func(r *colly.Response) {
		url := r.Request.URL.String()

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			llFetchLogf("ERROR PROCESSING RESPONSE BODY: %v\n", err)
			return
		}

		// Index pages are link tables; only pages with running prose are texts.
		if !llIsText(doc) {
			return
		}

		if fetchOptions.DocumentLimit > 0 && llSuccessful >= fetchOptions.DocumentLimit {
			return
		}

		fc, err := llProcessText(url, doc)
		if err != nil {
			return
		}
		if err := repo.SaveContent(fc); err != nil {
			llFetchLogf("ERROR SAVING: %v (%s)\n", err, url)
			return
		}
		llSuccessful++
	})

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		link := e.Attr("href")
		// The site links plain relative paths; skip mailto and anchors.
		if strings.HasPrefix(link, "mailto:") || strings.HasPrefix(link, "#") {
			return
		}
		origUrl, err := url.Parse(link)
		if err != nil {
			llFetchLogf("ERROR: %v (%s)\n", err, link)
			return
		}
		e.Request.Visit(e.Request.AbsoluteURL(origUrl.String()))
	})

	c.OnError(func(r *colly.Response, err error) {
		llFetchLogf("ERROR: %v\n", err)
	})

	if fetchOptions.Uri != "" {
		c.Visit(fetchOptions.Uri)
	} else if fetchOptions.DeparturePoint != "" {
		c.Visit(fetchOptions.DeparturePoint)
	} else {
		c.Visit(llDefaultDeparturePoint)
	}

	if fetchOptions.Async {
		c.Wait()
	}

	llFetchLogf("TOTAL SUCCESSFUL: %d\n", llSuccessful)

	return nil
}

func llIsText(d *goquery.Document) bool {
	paras := d.Find("p").Not(".pagehead").Not(".pagefoot").Not(".internal_navigation")
	if paras.Length() < 3 {
		return false
	}
	// A text page has more prose than links.
	return len(strings.TrimSpace(paras.Text())) > 10*d.Find("a").Length()
}

func llProcessText(uri string, doc *goquery.Document) (*content.FetchedContent, error) {
	llFetchLogf("PROCESS: %s\n", uri)
	fc := &content.FetchedContent{}

	fc.Uri = uri
	fc.Language = languages.LA
	fc.CanonName = llCanonName

	// TITLE
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		llFetchLogf("FAILED (TITLE): %s\n", fc.Uri)
		return nil, fmt.Errorf("fetcher: no title: %s", uri)
	}
	fc.Title = title

	// AUTHOR. Titles follow the "Author: Work" convention when present.
	if i := strings.Index(title, ":"); i > 0 {
		fc.Author = strings.TrimSpace(title[:i])
	} else {
		fc.Author = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	// BODY
	sel := doc.Find("p").Not(".pagehead").Not(".pagefoot").Not(".internal_navigation")
	paras := []string{}
	sel.Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			paras = append(paras, text)
		}
	})
	body := strings.Join(paras, "\n\n")
	if body == "" {
		llFetchLogf("FAILED (BODY): %s\n", fc.Uri)
		return nil, fmt.Errorf("fetcher: no body: %s", uri)
	}
	fc.Body = body

	llFetchLogf("SUCCESS: %s\n", fc.Uri)
	return fc, nil
}
