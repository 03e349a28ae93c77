package upload

// Task is the wire envelope for one model-upload request. Optional fields
// are omitted from the JSON body when unset.
type Task struct {
	TaskType     string `json:"taskType"`
	TaskUUID     string `json:"taskUUID"`
	Category     string `json:"category"`
	Architecture string `json:"architecture"`
	Conditioning string `json:"conditioning,omitempty"`
	Format       string `json:"format"`
	Name         string `json:"name"`
	Version      string `json:"version"`
	DownloadURL  string `json:"downloadURL"`
	Private      bool   `json:"private"`

	AIR              string `json:"air,omitempty"`
	UniqueIdentifier string `json:"uniqueIdentifier,omitempty"`

	DefaultWeight    float64 `json:"defaultWeight,omitempty"`
	DefaultScheduler string  `json:"defaultScheduler,omitempty"`
	DefaultSteps     int     `json:"defaultSteps,omitempty"`
	DefaultCFG       float64 `json:"defaultCFG,omitempty"`
	DefaultStrength  float64 `json:"defaultStrength,omitempty"`

	HeroImageURL         string   `json:"heroImageURL,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
	PositiveTriggerWords []string `json:"positiveTriggerWords,omitempty"`
	NegativeTriggerWords string   `json:"negativeTriggerWords,omitempty"`
	ShortDescription     string   `json:"shortDescription,omitempty"`
	Comment              string   `json:"comment,omitempty"`
	WebhookURL           string   `json:"webhookURL,omitempty"`
	DeliveryMethod       string   `json:"deliveryMethod,omitempty"`
}

// Model describes a model to upload, independent of its category. Zero
// values fall back to the API defaults: version 1.0, safetensors format,
// private visibility.
type Model struct {
	DownloadURL  string
	Architecture string
	Name         string
	Version      string
	Format       string
	// Public uploads the model with public visibility; models are private
	// unless asked otherwise.
	Public bool

	AIR              string
	UniqueIdentifier string
	DefaultWeight    float64

	HeroImageURL         string
	Tags                 []string
	PositiveTriggerWords []string
	NegativeTriggerWords string
	ShortDescription     string
	Comment              string
	WebhookURL           string
	DeliveryMethod       string
}

// task builds the wire envelope for the given category with a fresh task
// identifier. No identifier is ever reused across calls.
func (m Model) task(category string) Task {
	version := m.Version
	if version == "" {
		version = "1.0"
	}
	format := m.Format
	if format == "" {
		format = "safetensors"
	}

	return Task{
		TaskType:             "modelUpload",
		TaskUUID:             newTaskUUID(),
		Category:             category,
		Architecture:         m.Architecture,
		Format:               format,
		Name:                 m.Name,
		Version:              version,
		DownloadURL:          m.DownloadURL,
		Private:              !m.Public,
		AIR:                  m.AIR,
		UniqueIdentifier:     m.UniqueIdentifier,
		DefaultWeight:        m.DefaultWeight,
		HeroImageURL:         m.HeroImageURL,
		Tags:                 m.Tags,
		PositiveTriggerWords: m.PositiveTriggerWords,
		NegativeTriggerWords: m.NegativeTriggerWords,
		ShortDescription:     m.ShortDescription,
		Comment:              m.Comment,
		WebhookURL:           m.WebhookURL,
		DeliveryMethod:       m.DeliveryMethod,
	}
}
