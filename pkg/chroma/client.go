package chroma

import (
	"context"
	"fmt"
	"log"
	"os"

	"stylemail-backend/pkg/config"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/amikos-tech/chroma-go/pkg/embeddings/gemini"
)

// Client stores embeddings of approved style samples and retrieves the
// samples closest to a composition topic.
type Client struct {
	client     chroma.Client
	embedFunc  *gemini.GeminiEmbeddingFunction
	collection chroma.Collection
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.ChromaAPIKey == "" {
		return nil, fmt.Errorf("CHROMA_API_KEY is required")
	}

	// The embedding function reads the Gemini key from the environment
	if cfg.GeminiApiKey != "" {
		os.Setenv("GEMINI_API_KEY", cfg.GeminiApiKey)
	}

	embedFunc, err := gemini.NewGeminiEmbeddingFunction(
		gemini.WithEnvAPIKey(),
		gemini.WithDefaultModel("text-embedding-004"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini embedding function: %w", err)
	}

	var client chroma.Client
	if cfg.ChromaDatabase != "" && cfg.ChromaTenant != "" {
		client, err = chroma.NewHTTPClient(
			chroma.WithBaseURL(chroma.ChromaCloudEndpoint),
			chroma.WithCloudAPIKey(cfg.ChromaAPIKey),
			chroma.WithDatabaseAndTenant(cfg.ChromaDatabase, cfg.ChromaTenant),
		)
	} else if cfg.ChromaTenant != "" {
		client, err = chroma.NewHTTPClient(
			chroma.WithBaseURL(chroma.ChromaCloudEndpoint),
			chroma.WithCloudAPIKey(cfg.ChromaAPIKey),
			chroma.WithTenant(cfg.ChromaTenant),
		)
	} else {
		client, err = chroma.NewHTTPClient(
			chroma.WithBaseURL(chroma.ChromaCloudEndpoint),
			chroma.WithCloudAPIKey(cfg.ChromaAPIKey),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create Chroma client: %w", err)
	}

	collection, err := client.GetOrCreateCollection(
		context.Background(),
		"style_samples",
		chroma.WithEmbeddingFunctionCreate(embedFunc),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("Initialized Chroma client with collection: style_samples")

	return &Client{
		client:     client,
		embedFunc:  embedFunc,
		collection: collection,
	}, nil
}

// UpsertSampleEmbedding stores or refreshes the embedding of one approved
// sample. Sample IDs double as document IDs so re-freezing never duplicates.
func (c *Client) UpsertSampleEmbedding(ctx context.Context, sampleID, userID, category, content string) error {
	text := content
	if len(text) > 10000 {
		// Embedding models have token limits
		text = text[:10000]
	}

	metadata, err := chroma.NewDocumentMetadataFromMap(map[string]interface{}{
		"user_id":   userID,
		"sample_id": sampleID,
		"category":  category,
	})
	if err != nil {
		return fmt.Errorf("failed to create metadata: %w", err)
	}

	err = c.collection.Upsert(
		ctx,
		chroma.WithIDs(chroma.DocumentID(sampleID)),
		chroma.WithMetadatas(metadata),
		chroma.WithTexts(text),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert sample embedding: %w", err)
	}

	return nil
}

// FindStyleExamples returns IDs of the user's approved samples most similar
// to the given topic, nearest first.
func (c *Client) FindStyleExamples(ctx context.Context, userID, topic string, limit int) ([]string, error) {
	where := chroma.EqString("user_id", userID)

	results, err := c.collection.Query(
		ctx,
		chroma.WithQueryTexts(topic),
		chroma.WithNResults(limit),
		chroma.WithWhereQuery(where),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection: %w", err)
	}

	if results == nil || results.CountGroups() == 0 {
		return []string{}, nil
	}

	idGroups := results.GetIDGroups()
	if len(idGroups) == 0 {
		return []string{}, nil
	}

	ids := make([]string, 0, len(idGroups[0]))
	for _, id := range idGroups[0] {
		ids = append(ids, string(id))
	}
	return ids, nil
}
