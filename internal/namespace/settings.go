package namespace

// Settings is the typed view of the recognized keys.
type Settings struct {
	APICoreAdminURL   string `json:"apiCoreAdminUrl" yaml:"apiCoreAdminUrl"`
	APIAiMentorURL    string `json:"apiAiMentorUrl" yaml:"apiAiMentorUrl"`
	APICurriculumURL  string `json:"apiCurriculumUrl" yaml:"apiCurriculumUrl"`
	APICieURL         string `json:"apiCieUrl" yaml:"apiCieUrl"`
	APIMathURL        string `json:"apiMathUrl" yaml:"apiMathUrl"`
	APIPhysicsURL     string `json:"apiPhysicsUrl" yaml:"apiPhysicsUrl"`
	APIChemistryURL   string `json:"apiChemistryUrl" yaml:"apiChemistryUrl"`
	APISquadURL       string `json:"apiSquadUrl" yaml:"apiSquadUrl"`
	FirebaseProjectID string `json:"firebaseProjectId" yaml:"firebaseProjectId"`
	Environment       string `json:"environment" yaml:"environment"`
	AppVersion        string `json:"appVersion" yaml:"appVersion"`
	EnableAnalytics   bool   `json:"enableAnalytics" yaml:"enableAnalytics"`
	Debug             bool   `json:"debug" yaml:"debug"`
}

// DefaultSettings returns the compiled-in defaults.
func DefaultSettings() Settings {
	s, _ := Decode(Defaults())
	return s
}

// Decode builds Settings from an initialized namespace. Missing keys take
// their defaults; ill-typed recognized keys are rejected.
func Decode(n Namespace) (Settings, error) {
	src := Initialize(n.Clone())
	if err := src.Validate(); err != nil {
		return Settings{}, err
	}

	str := func(key string) string { return src[key].(string) }
	flag := func(key string) bool { return src[key].(bool) }

	return Settings{
		APICoreAdminURL:   str(KeyAPICoreAdminURL),
		APIAiMentorURL:    str(KeyAPIAiMentorURL),
		APICurriculumURL:  str(KeyAPICurriculumURL),
		APICieURL:         str(KeyAPICieURL),
		APIMathURL:        str(KeyAPIMathURL),
		APIPhysicsURL:     str(KeyAPIPhysicsURL),
		APIChemistryURL:   str(KeyAPIChemistryURL),
		APISquadURL:       str(KeyAPISquadURL),
		FirebaseProjectID: str(KeyFirebaseProjectID),
		Environment:       str(KeyEnvironment),
		AppVersion:        str(KeyAppVersion),
		EnableAnalytics:   flag(KeyEnableAnalytics),
		Debug:             flag(KeyDebug),
	}, nil
}

// Namespace converts s back into a namespace holding the thirteen keys.
func (s Settings) Namespace() Namespace {
	return Namespace{
		KeyAPICoreAdminURL:   s.APICoreAdminURL,
		KeyAPIAiMentorURL:    s.APIAiMentorURL,
		KeyAPICurriculumURL:  s.APICurriculumURL,
		KeyAPICieURL:         s.APICieURL,
		KeyAPIMathURL:        s.APIMathURL,
		KeyAPIPhysicsURL:     s.APIPhysicsURL,
		KeyAPIChemistryURL:   s.APIChemistryURL,
		KeyAPISquadURL:       s.APISquadURL,
		KeyFirebaseProjectID: s.FirebaseProjectID,
		KeyEnvironment:       s.Environment,
		KeyAppVersion:        s.AppVersion,
		KeyEnableAnalytics:   s.EnableAnalytics,
		KeyDebug:             s.Debug,
	}
}
