package bridgedb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Xref is a single cross-reference returned by the BridgeDB web service:
// an identifier together with the name of the datasource it belongs to.
type Xref struct {
	ID         string
	Datasource string
}

// Client talks to the BridgeDB web service and, for compound name
// resolution, the PubChem PUG REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	pubChemURL string
}

// NewClient creates a BridgeDB client. All outbound calls are bounded by the
// given timeout in addition to any context deadline.
func NewClient(baseURL, pubChemURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		pubChemURL: strings.TrimRight(pubChemURL, "/"),
	}
}

// MapIdentifier looks up cross-references for an identifier via
// GET {base}/{species}/xrefs/{source}/{identifier}. The service answers with
// tab-separated lines of "mappedID<TAB>datasource name". An empty body means
// the identifier is known but has no mappings.
func (c *Client) MapIdentifier(ctx context.Context, species, source, identifier string) ([]Xref, error) {
	u := fmt.Sprintf("%s/%s/xrefs/%s/%s",
		c.baseURL,
		url.PathEscape(species),
		url.PathEscape(source),
		url.PathEscape(identifier))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	return parseXrefs(body), nil
}

// ResolveCompound resolves a chemical compound name to its PubChem CID via
// the PUG REST API. Used when the model names a compound instead of a CID.
func (c *Client) ResolveCompound(ctx context.Context, name string) (string, error) {
	u := fmt.Sprintf("%s/compound/name/%s/cids/TXT", c.pubChemURL, url.PathEscape(name))

	body, err := c.get(ctx, u)
	if err != nil {
		return "", fmt.Errorf("failed to resolve compound %q: %w", name, err)
	}

	cid := strings.TrimSpace(body)
	// Ambiguous names return one CID per line; the first is the best match.
	if i := strings.IndexByte(cid, '\n'); i >= 0 {
		cid = strings.TrimSpace(cid[:i])
	}
	if cid == "" {
		return "", fmt.Errorf("no PubChem CID found for compound %q", name)
	}

	return cid, nil
}

func (c *Client) get(ctx context.Context, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d (%s)", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return string(body), nil
}

func parseXrefs(body string) []Xref {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil
	}

	lines := strings.Split(body, "\n")
	xrefs := make([]Xref, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		xref := Xref{ID: parts[0]}
		if len(parts) == 2 {
			xref.Datasource = parts[1]
		}
		xrefs = append(xrefs, xref)
	}

	return xrefs
}

// FormatXrefs renders mapping results as human-readable text. GeneOntology
// terms and UCSC Genome Browser identifiers get usage hints because neither
// can be pasted into a search box as-is.
func FormatXrefs(identifier, source string, xrefs []Xref) string {
	if len(xrefs) == 0 {
		return fmt.Sprintf("No mappings found for %s from %s", identifier, source)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Mapped identifiers for %s from %s:\n", identifier, source)
	for _, x := range xrefs {
		switch x.Datasource {
		case "GeneOntology":
			fmt.Fprintf(&b, "- Gene Ontology term: %s (look up at http://geneontology.org/)\n", x.ID)
		case "UCSC Genome Browser":
			fmt.Fprintf(&b, "- UCSC Genome Browser identifier: %s (search by gene name or genomic location)\n", x.ID)
		default:
			fmt.Fprintf(&b, "- %s\t%s\n", x.ID, x.Datasource)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
