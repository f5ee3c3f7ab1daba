package emt

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the origin of the EMT Madrid open data portal.
	DefaultBaseURL = "https://opendata.emtmadrid.es/"

	// generalDataPath is the static-data index page listing the monthly archives.
	generalDataPath = "Datos-estaticos/Datos-generales-(1)"
)

// monthNames maps month numbers to the English names embedded in archive file names.
var monthNames = map[int]string{
	1:  "January",
	2:  "February",
	3:  "March",
	4:  "April",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "August",
	9:  "September",
	10: "October",
	11: "November",
	12: "December",
}

// Catalog holds the set of monthly trip archive links published on the portal
// index page. The set is gathered once at construction time and never mutated;
// build a new catalog to pick up newly published months.
type Catalog struct {
	logger  *zap.Logger
	baseURL string

	links map[string]struct{}
}

// NewCatalog fetches the portal index page and builds the link catalog from it.
func NewCatalog(ctx context.Context, logger *zap.Logger) (*Catalog, error) {
	return NewCatalogFromBase(ctx, logger, DefaultBaseURL)
}

// NewCatalogFromBase behaves like NewCatalog against an alternate portal origin.
func NewCatalogFromBase(ctx context.Context, logger *zap.Logger, baseURL string) (*Catalog, error) {
	c := &Catalog{
		logger:  logger,
		baseURL: baseURL,
	}

	indexURL := baseURL + generalDataPath
	body, err := c.getPath(ctx, indexURL)
	if err != nil {
		return nil, err
	}

	c.links = ExtractLinks(baseURL, string(body))

	c.logger.Debug("built link catalog",
		zap.String("index_url", indexURL),
		zap.Int("link_count", len(c.links)),
	)

	return c, nil
}

// Links returns the set of archive URLs gathered at construction time.
func (c *Catalog) Links() map[string]struct{} {
	return c.links
}

// ResolveURL returns the stored archive URL for the supplied month and year.
// If two stored links carry the same year and month token the result is an
// arbitrary one of them; well-formed index pages publish each month once.
func (c *Catalog) ResolveURL(month int, year int) (string, error) {
	if month < 1 || month > 12 {
		return "", ErrInvalidMonth
	}
	if year != 21 && year != 22 && year != 23 {
		return "", ErrInvalidYear
	}

	token := fmt.Sprintf("%d_%02d", year, month)
	for link := range c.links {
		if strings.Contains(link, token) {
			return link, nil
		}
	}

	return "", &LinkNotFoundError{Month: month, Year: year}
}

// FetchCSV downloads the month's ZIP archive and returns the trip CSV it
// contains as a text stream positioned at the start.
func (c *Catalog) FetchCSV(ctx context.Context, month int, year int) (io.Reader, error) {
	link, err := c.ResolveURL(month, year)
	if err != nil {
		return nil, err
	}

	body, err := c.getPath(ctx, link)
	if err != nil {
		return nil, err
	}

	zipReader, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, err
	}

	name := CSVFileName(month, year)
	for _, zipFile := range zipReader.File {
		if zipFile.Name != name {
			continue
		}

		f, err := zipFile.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()

		contents, err := ioutil.ReadAll(f)
		if err != nil {
			return nil, err
		}

		return strings.NewReader(string(contents)), nil
	}

	return nil, fmt.Errorf("could not find file %s in zip", name)
}

// CSVFileName returns the name of the trip CSV inside the month's ZIP archive.
// The month is not range checked; resolution has already validated it.
func CSVFileName(month int, year int) string {
	return fmt.Sprintf("trips_%02d_%02d_%s.csv", year, month, monthNames[month])
}

func (c *Catalog) getPath(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		c.logger.Warn("error creating request",
			zap.Error(err),
		)
		return nil, err
	}

	req = req.WithContext(ctx)

	client := http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.logger.Warn("error performing request",
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Info("received non-OK response",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, &ConnectionError{URL: path, StatusCode: resp.StatusCode}
	}

	return ioutil.ReadAll(resp.Body)
}
