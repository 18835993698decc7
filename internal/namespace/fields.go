package namespace

// Kind is the semantic type of a recognized key.
type Kind int

const (
	KindString Kind = iota
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Field describes one recognized key.
type Field struct {
	Key     string
	EnvVar  string
	Kind    Kind
	Default any
}

const (
	KeyAPICoreAdminURL   = "apiCoreAdminUrl"
	KeyAPIAiMentorURL    = "apiAiMentorUrl"
	KeyAPICurriculumURL  = "apiCurriculumUrl"
	KeyAPICieURL         = "apiCieUrl"
	KeyAPIMathURL        = "apiMathUrl"
	KeyAPIPhysicsURL     = "apiPhysicsUrl"
	KeyAPIChemistryURL   = "apiChemistryUrl"
	KeyAPISquadURL       = "apiSquadUrl"
	KeyFirebaseProjectID = "firebaseProjectId"
	KeyEnvironment       = "environment"
	KeyAppVersion        = "appVersion"
	KeyEnableAnalytics   = "enableAnalytics"
	KeyDebug             = "debug"
)

var fields = []Field{
	{Key: KeyAPICoreAdminURL, EnvVar: "API_CORE_ADMIN_URL", Kind: KindString, Default: ""},
	{Key: KeyAPIAiMentorURL, EnvVar: "API_AI_MENTOR_URL", Kind: KindString, Default: ""},
	{Key: KeyAPICurriculumURL, EnvVar: "API_CURRICULUM_URL", Kind: KindString, Default: ""},
	{Key: KeyAPICieURL, EnvVar: "API_CIE_URL", Kind: KindString, Default: ""},
	{Key: KeyAPIMathURL, EnvVar: "API_MATH_URL", Kind: KindString, Default: ""},
	{Key: KeyAPIPhysicsURL, EnvVar: "API_PHYSICS_URL", Kind: KindString, Default: ""},
	{Key: KeyAPIChemistryURL, EnvVar: "API_CHEMISTRY_URL", Kind: KindString, Default: ""},
	{Key: KeyAPISquadURL, EnvVar: "API_SQUAD_URL", Kind: KindString, Default: ""},
	{Key: KeyFirebaseProjectID, EnvVar: "FIREBASE_PROJECT_ID", Kind: KindString, Default: "octo-education-ddc76"},
	{Key: KeyEnvironment, EnvVar: "ENVIRONMENT", Kind: KindString, Default: "production"},
	{Key: KeyAppVersion, EnvVar: "APP_VERSION", Kind: KindString, Default: "1.0.0"},
	{Key: KeyEnableAnalytics, EnvVar: "ENABLE_ANALYTICS", Kind: KindBool, Default: true},
	{Key: KeyDebug, EnvVar: "DEBUG", Kind: KindBool, Default: false},
}

var fieldIndex = func() map[string]Field {
	idx := make(map[string]Field, len(fields))
	for _, f := range fields {
		idx[f.Key] = f
	}
	return idx
}()

// Fields returns the recognized keys in declaration order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the field for key if it is recognized.
func Lookup(key string) (Field, bool) {
	f, ok := fieldIndex[key]
	return f, ok
}

// IsRecognized reports whether key is one of the declared fields.
func IsRecognized(key string) bool {
	_, ok := fieldIndex[key]
	return ok
}

// Accepts reports whether value matches the field's kind.
func (f Field) Accepts(value any) bool {
	switch f.Kind {
	case KindString:
		_, ok := value.(string)
		return ok
	case KindBool:
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}
