package search

import (
	"real-estate-intelligence/internal/models"

	"github.com/meilisearch/meilisearch-go"
)

type SearchClient struct {
	client *meilisearch.Client
	index  string
}

func NewSearchClient(host, apiKey string) *SearchClient {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})

	return &SearchClient{
		client: client,
		index:  "analyses",
	}
}

// InitIndex initializes the Meilisearch index
func (s *SearchClient) InitIndex() error {
	_, err := s.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        s.index,
		PrimaryKey: "id",
	})
	// Ignore error if index already exists
	if err != nil && err.Error() != "index already exists" {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSearchableAttributes(&[]string{
		"property_address",
		"recommendation",
		"overall_risk",
	})
	if err != nil {
		return err
	}

	_, err = s.client.Index(s.index).UpdateFilterableAttributes(&[]string{
		"id",
		"investment_score",
		"estimated_value",
		"overall_risk",
		"enriched",
	})
	if err != nil {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSortableAttributes(&[]string{
		"estimated_value",
		"investment_score",
		"roi_percentage",
		"analyzed_at",
	})
	if err != nil {
		return err
	}

	return nil
}

// analysisDocument is the flattened shape indexed per analysis. The JSON
// payload column is intentionally excluded.
type analysisDocument struct {
	ID              string  `json:"id"`
	PropertyAddress string  `json:"property_address"`
	EstimatedValue  float64 `json:"estimated_value"`
	PricePerSqft    float64 `json:"price_per_sqft"`
	InvestmentScore int     `json:"investment_score"`
	ROIPercentage   float64 `json:"roi_percentage"`
	Recommendation  string  `json:"recommendation"`
	OverallRisk     string  `json:"overall_risk"`
	Enriched        bool    `json:"enriched"`
	AnalyzedAt      int64   `json:"analyzed_at"`
}

func toDocument(row models.AnalysisRow) analysisDocument {
	return analysisDocument{
		ID:              row.ID,
		PropertyAddress: row.PropertyAddress,
		EstimatedValue:  row.EstimatedValue,
		PricePerSqft:    row.PricePerSqft,
		InvestmentScore: row.InvestmentScore,
		ROIPercentage:   row.ROIPercentage,
		Recommendation:  row.Recommendation,
		OverallRisk:     row.OverallRisk,
		Enriched:        row.Enriched,
		AnalyzedAt:      row.AnalyzedAt.Unix(),
	}
}

// IndexAnalysis indexes a single analysis
func (s *SearchClient) IndexAnalysis(row *models.AnalysisRow) error {
	_, err := s.client.Index(s.index).AddDocuments([]analysisDocument{toDocument(*row)})
	return err
}

// IndexAnalyses indexes multiple analyses
func (s *SearchClient) IndexAnalyses(rows []models.AnalysisRow) error {
	if len(rows) == 0 {
		return nil
	}
	docs := make([]analysisDocument, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, toDocument(row))
	}
	_, err := s.client.Index(s.index).AddDocuments(docs)
	return err
}

// DeleteAnalyses removes documents by id, used after retention cleanup
func (s *SearchClient) DeleteAnalyses(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.client.Index(s.index).DeleteDocuments(ids)
	return err
}

// SearchRequest represents advanced search parameters
type SearchRequest struct {
	Query  string
	Limit  int64
	Offset int64
	Filter []string
	Sort   []string
}

// SearchResult represents search results
type SearchResult struct {
	Hits           []models.AnalysisRow
	TotalHits      int64
	ProcessingTime int64
}

// Search searches analyses with basic options
func (s *SearchClient) Search(query string, limit int64) ([]models.AnalysisRow, error) {
	result, err := s.AdvancedSearch(SearchRequest{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}
	return result.Hits, nil
}

// AdvancedSearch performs a search with filters and sorting
func (s *SearchClient) AdvancedSearch(req SearchRequest) (*SearchResult, error) {
	if req.Limit == 0 {
		req.Limit = 20
	}

	searchReq := &meilisearch.SearchRequest{
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	if len(req.Filter) > 0 {
		filterStr := ""
		for i, f := range req.Filter {
			if i > 0 {
				filterStr += " AND "
			}
			filterStr += f
		}
		searchReq.Filter = filterStr
	}

	if len(req.Sort) > 0 {
		searchReq.Sort = req.Sort
	}

	searchRes, err := s.client.Index(s.index).Search(req.Query, searchReq)
	if err != nil {
		return nil, err
	}

	rows := make([]models.AnalysisRow, 0, len(searchRes.Hits))
	for _, hit := range searchRes.Hits {
		rows = append(rows, parseAnalysisFromHit(hit))
	}

	return &SearchResult{
		Hits:           rows,
		TotalHits:      searchRes.EstimatedTotalHits,
		ProcessingTime: searchRes.ProcessingTimeMs,
	}, nil
}

// parseAnalysisFromHit converts a search hit to an AnalysisRow
func parseAnalysisFromHit(hit interface{}) models.AnalysisRow {
	hitMap, ok := hit.(map[string]interface{})
	if !ok {
		return models.AnalysisRow{}
	}

	row := models.AnalysisRow{
		ID:              getString(hitMap, "id"),
		PropertyAddress: getString(hitMap, "property_address"),
		Recommendation:  getString(hitMap, "recommendation"),
		OverallRisk:     getString(hitMap, "overall_risk"),
	}

	if v, ok := hitMap["estimated_value"].(float64); ok {
		row.EstimatedValue = v
	}
	if v, ok := hitMap["price_per_sqft"].(float64); ok {
		row.PricePerSqft = v
	}
	if v, ok := hitMap["investment_score"].(float64); ok {
		row.InvestmentScore = int(v)
	}
	if v, ok := hitMap["roi_percentage"].(float64); ok {
		row.ROIPercentage = v
	}
	if v, ok := hitMap["enriched"].(bool); ok {
		row.Enriched = v
	}

	return row
}

// getString safely extracts a string from map
func getString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}
