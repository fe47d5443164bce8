package pinecone

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.SimilarArticleLister = (*Client)(nil)

const (
	maxSimilarLimit = 100
	searchBatchSize = 10
	chunkListLimit  = uint32(20)
)

// Client finds similar articles in a Pinecone index whose vectors are the
// embedded chunks of each article, with IDs of the form "<article id>_<chunk>"
// and an integer "article_id" metadata field.
type Client struct {
	pinecone  *pinecone.Client
	index     *pinecone.Index
	namespace string
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
	namespace string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone:  pc,
		index:     idx,
		namespace: namespace,
	}, nil
}

func (c *Client) ListSimilarArticles(
	ctx context.Context,
	articleID int64,
	limit int,
) ([]domain.SimilarArticle, error) {
	if limit > maxSimilarLimit {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}
	if limit <= 0 {
		return nil, nil
	}

	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: c.namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	defer func() { _ = idxConn.Close() }()

	searchVector, err := c.articleVector(ctx, idxConn, articleID)
	if err != nil {
		return nil, err
	}
	if searchVector == nil {
		// Not indexed yet.
		return nil, nil
	}

	var results []domain.SimilarArticle
	for len(results) < limit {
		found, err := c.searchBatch(ctx, idxConn, articleID, searchVector, &results, limit)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
	}
	return results, nil
}

// articleVector averages the chunk vectors of an article. It returns nil
// when the article has no vectors.
func (c *Client) articleVector(
	ctx context.Context,
	idxConn *pinecone.IndexConnection,
	articleID int64,
) ([]float32, error) {
	prefix := vectorPrefix(articleID)
	limit := chunkListLimit
	listResp, err := idxConn.ListVectors(ctx, &pinecone.ListVectorsRequest{
		Prefix: &prefix,
		Limit:  &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing vector IDs for article [%d]: %w", articleID, err)
	}
	if len(listResp.VectorIds) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(listResp.VectorIds))
	for _, id := range listResp.VectorIds {
		ids = append(ids, *id)
	}

	fetchResp, err := idxConn.FetchVectors(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching vectors for article [%d]: %w", articleID, err)
	}

	values := make([][]float32, 0, len(fetchResp.Vectors))
	for _, vector := range fetchResp.Vectors {
		values = append(values, vector.Values)
	}
	return averageVectors(values), nil
}

func (c *Client) searchBatch(
	ctx context.Context,
	idxConn *pinecone.IndexConnection,
	articleID int64,
	searchVector []float32,
	results *[]domain.SimilarArticle,
	limit int,
) (bool, error) {
	filter, err := exclusionFilter(articleID, *results)
	if err != nil {
		return false, err
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:         searchVector,
		TopK:           searchBatchSize,
		MetadataFilter: filter,
	})
	if err != nil {
		return false, fmt.Errorf("querying for similar vectors: %w", err)
	}

	found := false
	for _, match := range resp.Matches {
		matchID, err := articleIDFromVectorID(match.Vector.Id)
		if err != nil {
			return false, err
		}
		if matchID == articleID || containsArticle(*results, matchID) {
			continue
		}

		found = true
		if len(*results) < limit {
			*results = append(*results, domain.SimilarArticle{
				ArticleID: matchID,
				Score:     float64(match.Score),
			})
		}
	}
	return found, nil
}

func vectorPrefix(articleID int64) string {
	return strconv.FormatInt(articleID, 10) + "_"
}

func exclusionFilter(articleID int64, results []domain.SimilarArticle) (*pinecone.MetadataFilter, error) {
	excluded := []any{float64(articleID)}
	for _, result := range results {
		excluded = append(excluded, float64(result.ArticleID))
	}

	filter, err := structpb.NewStruct(map[string]any{
		"article_id": map[string]any{
			"$nin": excluded,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter map: %w", err)
	}
	return filter, nil
}

func articleIDFromVectorID(vectorID string) (int64, error) {
	idPart, _, ok := strings.Cut(vectorID, "_")
	if !ok {
		return 0, fmt.Errorf("unexpected pinecone vector ID format [%s]", vectorID)
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected pinecone vector ID format [%s]: %w", vectorID, err)
	}
	return id, nil
}

func containsArticle(results []domain.SimilarArticle, articleID int64) bool {
	for _, result := range results {
		if result.ArticleID == articleID {
			return true
		}
	}
	return false
}

func averageVectors(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	result := make([]float32, len(vectors[0]))
	for _, vector := range vectors {
		for i, v := range vector {
			result[i] += v
		}
	}

	for i := range result {
		result[i] /= float32(len(vectors))
	}

	return result
}
