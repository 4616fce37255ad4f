package llm

import "github.com/openai/openai-go"

// ToolMapIdentifier is the name of the identifier-mapping tool exposed to the
// model. The model returns a typed call to this tool instead of free text
// instructions, so no output parsing heuristics are needed.
const ToolMapIdentifier = "map_identifier"

// assistantTools defines the functions available to the model.
func assistantTools() []openai.ChatCompletionToolParam {
	return []openai.ChatCompletionToolParam{
		{
			Function: openai.FunctionDefinitionParam{
				Name:        ToolMapIdentifier,
				Description: openai.String("Map a biological or chemical database identifier to equivalent identifiers in other databases using the BridgeDB web service."),
				Parameters: openai.FunctionParameters{
					"type": "object",
					"properties": map[string]interface{}{
						"species": map[string]interface{}{
							"type":        "string",
							"description": "Species the identifier belongs to, e.g. 'Human' or 'Homo sapiens'. Defaults to 'Human' when omitted.",
						},
						"source": map[string]interface{}{
							"type":        "string",
							"description": "BridgeDB datasource system code of the input identifier, e.g. 'En' for Ensembl, 'H' for HGNC, 'L' for Entrez Gene, 'Cpc' for PubChem Compound, 'Ce' for ChEBI.",
						},
						"identifier": map[string]interface{}{
							"type":        "string",
							"description": "The identifier to map, e.g. 'ENSG00000139618'. For PubChem Compound this may be a compound name, which will be resolved to a CID first.",
						},
					},
					"required": []string{"source", "identifier"},
				},
			},
		},
	}
}
