package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// TranscriptSegment is one timed span of spoken text.
type TranscriptSegment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// VideoInfo describes the source video returned with transcripts and analyses.
type VideoInfo struct {
	Title              string   `json:"title,omitempty"`
	Description        string   `json:"description,omitempty"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	URL                string   `json:"url,omitempty"`
	Channel            string   `json:"channel,omitempty"`
	ChannelURL         string   `json:"channel_url,omitempty"`
	Duration           float64  `json:"duration,omitempty"`
	Views              int64    `json:"views,omitempty"`
	Likes              int64    `json:"likes,omitempty"`
	PublishedDate      string   `json:"published_date,omitempty"`
	Keywords           []string `json:"keywords,omitempty"`
	Category           string   `json:"category,omitempty"`
	AvailableLanguages []string `json:"available_languages,omitempty"`
	SelectedLanguage   string   `json:"selected_language,omitempty"`
}

// FileInfo describes an uploaded file and its processing state.
// Date fields stay strings; the API does not guarantee RFC 3339.
type FileInfo struct {
	ID               string  `json:"id,omitempty"`
	Name             string  `json:"name,omitempty"`
	Size             int64   `json:"size,omitempty"`
	Type             string  `json:"type,omitempty"`
	Duration         float64 `json:"duration,omitempty"`
	Status           string  `json:"status,omitempty"`
	CreatedAt        string  `json:"created_at,omitempty"`
	UpdatedAt        string  `json:"updated_at,omitempty"`
	OriginalFileDate string  `json:"original_file_date,omitempty"`
	HasTranscript    bool    `json:"has_transcript,omitempty"`
	ErrorMessage     string  `json:"error_message,omitempty"`
}

// PersonPlaceSubject is one entity the analysis extracted from a transcript.
type PersonPlaceSubject struct {
	Name        string `json:"name,omitempty"`
	Context     string `json:"context,omitempty"`
	Description string `json:"description,omitempty"`
	Importance  string `json:"importance,omitempty"`
}

// AnalysisResult carries the AI analysis of a transcript. Timestamp is a
// pointer because 0.0 marks the start of the video, not absence.
type AnalysisResult struct {
	Summary      string               `json:"summary,omitempty"`
	People       []PersonPlaceSubject `json:"people,omitempty"`
	Places       []PersonPlaceSubject `json:"places,omitempty"`
	KeySubjects  []PersonPlaceSubject `json:"key_subjects,omitempty"`
	Timestamp    *float64             `json:"timestamp,omitempty"`
	RelevantText string               `json:"relevant_text,omitempty"`
	QueryAnswer  any                  `json:"query_answer,omitempty"`
}

// VideoSearchResult is one hit from an online video search.
type VideoSearchResult struct {
	Title             string               `json:"title,omitempty"`
	URL               string               `json:"url,omitempty"`
	Description       string               `json:"description,omitempty"`
	Thumbnail         string               `json:"thumbnail,omitempty"`
	Channel           string               `json:"channel,omitempty"`
	PublishedDate     string               `json:"published_date,omitempty"`
	Duration          float64              `json:"duration,omitempty"`
	Views             int64                `json:"views,omitempty"`
	Likes             int64                `json:"likes,omitempty"`
	RelevanceScore    *float64             `json:"relevance_score,omitempty"`
	TranscriptSummary string               `json:"transcript_summary,omitempty"`
	People            []PersonPlaceSubject `json:"people,omitempty"`
	Places            []PersonPlaceSubject `json:"places,omitempty"`
	KeySubjects       []PersonPlaceSubject `json:"key_subjects,omitempty"`
	Timestamp         *float64             `json:"timestamp,omitempty"`
	RelevantText      string               `json:"relevant_text,omitempty"`
	QueryRelevance    string               `json:"query_relevance,omitempty"`
}

// FileSearchResult is one hit from a search across uploaded files.
type FileSearchResult struct {
	ID                string               `json:"id,omitempty"`
	Name              string               `json:"name,omitempty"`
	Duration          float64              `json:"duration,omitempty"`
	Size              int64                `json:"size,omitempty"`
	Type              string               `json:"type,omitempty"`
	Status            string               `json:"status,omitempty"`
	CreatedAt         string               `json:"created_at,omitempty"`
	UpdatedAt         string               `json:"updated_at,omitempty"`
	OriginalFileDate  string               `json:"original_file_date,omitempty"`
	FileURL           string               `json:"file_url,omitempty"`
	RelevanceScore    *float64             `json:"relevance_score,omitempty"`
	Timestamp         *float64             `json:"timestamp,omitempty"`
	RelevantText      string               `json:"relevant_text,omitempty"`
	QueryAnswer       string               `json:"query_answer,omitempty"`
	TranscriptSummary string               `json:"transcript_summary,omitempty"`
	People            []PersonPlaceSubject `json:"people,omitempty"`
	Places            []PersonPlaceSubject `json:"places,omitempty"`
	KeySubjects       []PersonPlaceSubject `json:"key_subjects,omitempty"`
}
