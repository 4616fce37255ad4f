// Package docs holds the BridgeDB API documentation used as prompt context,
// plus an optional retrieval index that narrows the context to the sections
// relevant to a question.
package docs

// Reference is the built-in BridgeDB API usage documentation. It is the
// prompt context when no retrieval index is configured, the fallback when
// retrieval fails, and the default corpus for the ingest command.
const Reference = `BridgeDB web service — identifier mapping API.

BridgeDB maps identifiers of genes, proteins, metabolites, and chemical
compounds between biological databases. The web service is reached over
HTTPS; all responses are plain text with tab-separated columns.

Endpoint: GET /{species}/xrefs/{source}/{identifier}
Returns the cross-references of an identifier: one mapping per line, each
line "mappedIdentifier<TAB>datasource name". An empty body means the
identifier is known but has no mappings; HTTP 404 or 500 means the lookup
failed. The species path segment accepts a common name ("Human") or a latin
name ("Homo sapiens").

Datasource system codes (the {source} path segment):
  En   Ensembl              e.g. ENSG00000139618
  H    HGNC symbols         e.g. BRCA2, or accessions like HGNC:1101
  L    Entrez Gene          e.g. 675
  S    UniProt-TrEMBL       e.g. P51587
  X    Affy                 probe set identifiers
  Cpc  PubChem Compound     e.g. 2478 (a numeric CID)
  Ce   ChEBI                e.g. CHEBI:28901
  Dr   DrugBank             e.g. DB01008
  Ch   HMDB                 e.g. HMDB0014373
  Wd   Wikidata             e.g. Q17853272

Usage notes:
- Gene questions usually start from an Ensembl ID (En), an HGNC symbol (H),
  or an Entrez Gene ID (L). Bare gene symbols like TP53 map via H.
- Chemical questions start from a PubChem CID (Cpc), a ChEBI accession (Ce),
  or a DrugBank accession (Dr). A compound given by name (e.g. "Aspirin",
  "Busulfan") has no system code; it must be resolved to a PubChem CID
  first, then mapped via Cpc.
- Gene Ontology terms appearing in results represent biological concepts
  and can be looked up at http://geneontology.org/.
- UCSC Genome Browser identifiers in results are internal; search the
  browser by gene name or genomic location instead.

Examples:
  /Human/xrefs/En/ENSG00000139618   cross-references of a BRCA2 Ensembl ID
  /Human/xrefs/H/TP53               cross-references of the TP53 gene symbol
  /Human/xrefs/Cpc/2478             cross-references of PubChem CID 2478
  /Homo sapiens/xrefs/L/675         cross-references of Entrez Gene 675`
