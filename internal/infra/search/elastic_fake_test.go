package search

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/require"
)

// fakeElastic implements the handful of Elasticsearch endpoints the engine
// uses, applying geo_distance filters with the arc formula on a sphere.
type fakeElastic struct {
	mu           sync.Mutex
	index        string
	indexExists  bool
	createBody   map[string]any
	docs         map[string]shopDocument
	searchCalls  int
	lastDistance string
}

func newFakeElastic(t *testing.T, index string) (*fakeElastic, *elastic.Client) {
	t.Helper()

	fake := &fakeElastic{index: index, docs: make(map[string]shopDocument)}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := elastic.NewClient(
		elastic.SetURL(server.URL),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
	)
	require.NoError(t, err)
	t.Cleanup(client.Stop)

	return fake, client
}

func (f *fakeElastic) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	body, _ := io.ReadAll(r.Body)
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case len(parts) == 1 && r.Method == http.MethodHead:
		if !f.indexExists {
			w.WriteHeader(http.StatusNotFound)
		}
	case len(parts) == 1 && r.Method == http.MethodPut:
		f.indexExists = true
		_ = json.Unmarshal(body, &f.createBody)
		writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true, "index": f.index})
	case len(parts) == 2 && parts[1] == "_bulk":
		f.handleBulk(w, body)
	case len(parts) == 2 && parts[1] == "_search":
		f.handleSearch(w, body)
	case len(parts) == 3 && parts[1] == "_doc" && r.Method == http.MethodPut:
		var doc shopDocument
		_ = json.Unmarshal(body, &doc)
		f.docs[parts[2]] = doc
		writeJSON(w, http.StatusCreated, map[string]any{"_index": f.index, "_id": parts[2], "result": "created"})
	case len(parts) == 3 && parts[1] == "_doc" && r.Method == http.MethodDelete:
		if _, ok := f.docs[parts[2]]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"_index": f.index, "_id": parts[2], "result": "not_found"})
			return
		}
		delete(f.docs, parts[2])
		writeJSON(w, http.StatusOK, map[string]any{"_index": f.index, "_id": parts[2], "result": "deleted"})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unsupported " + r.Method + " " + r.URL.Path})
	}
}

func (f *fakeElastic) handleBulk(w http.ResponseWriter, body []byte) {
	scanner := bufio.NewScanner(bytes.NewReader(body))
	var pendingID string
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if pendingID == "" {
			var action map[string]struct {
				ID string `json:"_id"`
			}
			_ = json.Unmarshal(line, &action)
			pendingID = action["index"].ID
			continue
		}
		var doc shopDocument
		_ = json.Unmarshal(line, &doc)
		f.docs[pendingID] = doc
		pendingID = ""
	}

	writeJSON(w, http.StatusOK, map[string]any{"took": 1, "errors": false, "items": []any{}})
}

func (f *fakeElastic) handleSearch(w http.ResponseWriter, body []byte) {
	f.searchCalls++

	var req struct {
		Size        int   `json:"size"`
		SearchAfter []any `json:"search_after"`
	}
	_ = json.Unmarshal(body, &req)

	var decoded map[string]any
	_ = json.Unmarshal(body, &decoded)
	radiusKm := math.Inf(1)
	var lat, lon float64
	f.lastDistance = ""
	if geoFilter, ok := findKey(decoded, "geo_distance").(map[string]any); ok {
		distance, _ := geoFilter["distance"].(string)
		f.lastDistance = distance

		// Elasticsearch parses distances as finite doubles.
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(distance, "km"), 64)
		if err != nil || math.IsInf(parsed, 0) || math.IsNaN(parsed) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":  map[string]any{"type": "parse_exception", "reason": "failed to parse distance " + distance},
				"status": http.StatusBadRequest,
			})
			return
		}
		radiusKm = parsed

		point, _ := geoFilter["location"].(map[string]any)
		lat, _ = point["lat"].(float64)
		lon, _ = point["lon"].(float64)
	}

	after := int64(math.MinInt64)
	if len(req.SearchAfter) == 1 {
		if v, ok := req.SearchAfter[0].(float64); ok {
			after = int64(v)
		}
	}

	var ids []int64
	for _, doc := range f.docs {
		if doc.ID > after && arcDistanceKm(lat, lon, doc.Location.Lat, doc.Location.Lon) <= radiusKm {
			ids = append(ids, doc.ID)
		}
	}
	slices.Sort(ids)
	if req.Size > 0 && len(ids) > req.Size {
		ids = ids[:req.Size]
	}

	hits := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		hits = append(hits, map[string]any{
			"_index": f.index,
			"_id":    strconv.FormatInt(id, 10),
			"sort":   []any{id},
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"took": 1,
		"hits": map[string]any{
			"total": map[string]any{"value": len(hits), "relation": "eq"},
			"hits":  hits,
		},
	})
}

func findKey(v any, key string) any {
	switch node := v.(type) {
	case map[string]any:
		if found, ok := node[key]; ok {
			return found
		}
		for _, child := range node {
			if found := findKey(child, key); found != nil {
				return found
			}
		}
	case []any:
		for _, child := range node {
			if found := findKey(child, key); found != nil {
				return found
			}
		}
	}

	return nil
}

func arcDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	const rad = math.Pi / 180
	phi1, phi2 := lat1*rad, lat2*rad
	dPhi := (lat2 - lat1) * rad
	dLambda := (lon2 - lon1) * rad
	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * elasticEarthRadiusM / 1000 * math.Asin(math.Min(1, math.Sqrt(h)))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
