package language

import "github.com/talentahq/talenta/core"

// categoryPools holds the per-language term pools for every scannable
// category. The pools are closed data: extending coverage means editing this
// file, not registering terms at runtime.
var categoryPools = map[Category]map[core.Language]pool{
	CategoryGender:        genderPools,
	CategoryAge:           agePools,
	CategoryDisability:    disabilityPools,
	CategoryNationality:   nationalityPools,
	CategoryFamily:        familyPools,
	CategorySocioeconomic: socioeconomicPools,
	CategoryLocation:      locationPools,
	CategoryRequirements:  requirementsPools,
}

var genderPools = map[core.Language]pool{
	core.LanguageEnglish: {
		"aggressive":  {"Masculine-coded term that may discourage female applicants", []string{"driven", "ambitious", "proactive"}},
		"dominant":    {"Masculine-coded term", []string{"confident", "influential", "leading"}},
		"competitive": {"Masculine-coded term", []string{"motivated", "goal-oriented", "results-driven"}},
		"assertive":   {"Masculine-coded term", []string{"confident", "self-assured", "decisive"}},
		"fearless":    {"Masculine-coded term", []string{"confident", "bold", "courageous"}},
		"ninja":       {"Gendered tech jargon", []string{"expert", "specialist", "skilled professional"}},
		"rockstar":    {"Gendered tech jargon", []string{"high performer", "top talent", "skilled professional"}},
		"guru":        {"Gendered tech jargon", []string{"expert", "specialist", "authority"}},
		"manpower":    {"Gendered term", []string{"workforce", "staff", "team members"}},
		"chairman":    {"Gendered title", []string{"chairperson", "chair", "head"}},
		"salesman":    {"Gendered title", []string{"salesperson", "sales representative", "sales professional"}},
		"businessman": {"Gendered title", []string{"businessperson", "professional", "executive"}},
		"mankind":     {"Gendered term", []string{"humanity", "humankind", "people"}},
		"man-hours":   {"Gendered term", []string{"work hours", "person-hours", "labor hours"}},
		"nurturing":   {"Feminine-coded term", []string{"supportive", "mentoring", "developing"}},
	},
	core.LanguageSwedish: {
		"aggressiv":           {"Maskulint kodat ord", []string{"driven", "ambitiös", "proaktiv"}},
		"dominant":            {"Maskulint kodat ord", []string{"självsäker", "inflytelserik", "ledande"}},
		"konkurrensinriktad":  {"Maskulint kodat ord", []string{"motiverad", "målinriktad", "resultatdriven"}},
		"ninja":               {"Könsstereotyp teknikjargong", []string{"expert", "specialist", "skicklig medarbetare"}},
		"rockstjärna":         {"Könsstereotyp teknikjargong", []string{"topptalang", "skicklig medarbetare"}},
	},
	core.LanguageDanish: {
		"aggressiv":          {"Maskulint kodet ord", []string{"drevet", "ambitiøs", "proaktiv"}},
		"dominant":           {"Maskulint kodet ord", []string{"selvsikker", "indflydelsesrig", "ledende"}},
		"konkurrencepræget":  {"Maskulint kodet ord", []string{"motiveret", "målorienteret", "resultatdrevet"}},
		"ninja":              {"Kønsstereotyp teknisk jargon", []string{"ekspert", "specialist", "dygtig medarbejder"}},
		"rockstjerne":        {"Kønsstereotyp teknisk jargon", []string{"toptalent", "dygtig medarbejder"}},
	},
	core.LanguageNorwegian: {
		"aggressiv":             {"Maskulint kodet ord", []string{"drevet", "ambisiøs", "proaktiv"}},
		"dominant":              {"Maskulint kodet ord", []string{"selvsikker", "innflytelsesrik", "ledende"}},
		"konkurranseorientert":  {"Maskulint kodet ord", []string{"motivert", "målorientert", "resultatdrevet"}},
		"ninja":                 {"Kjønnsstereotyp teknisk sjargong", []string{"ekspert", "spesialist", "dyktig medarbeider"}},
		"rockestjerne":          {"Kjønnsstereotyp teknisk sjargong", []string{"topptalent", "dyktig medarbeider"}},
	},
	core.LanguageGerman: {
		"aggressiv":               {"Maskulin kodiertes Wort", []string{"engagiert", "ambitioniert", "proaktiv"}},
		"dominant":                {"Maskulin kodiertes Wort", []string{"selbstbewusst", "einflussreich", "führend"}},
		"wettbewerbsorientiert":   {"Maskulin kodiertes Wort", []string{"motiviert", "zielorientiert", "ergebnisorientiert"}},
		"ninja":                   {"Geschlechtsstereotype Tech-Jargon", []string{"Experte", "Spezialist", "Fachkraft"}},
		"rockstar":                {"Geschlechtsstereotype Tech-Jargon", []string{"Top-Talent", "Fachkraft"}},
	},
}

var agePools = map[core.Language]pool{
	core.LanguageEnglish: {
		"young":             {"Age-discriminatory term", []string{"energetic", "dynamic"}},
		"young and dynamic": {"Age-discriminatory phrase", []string{"energetic", "motivated"}},
		"young team":        {"Age-discriminatory phrase", []string{"collaborative team", "dynamic team"}},
		"digital native":    {"Age-coded term excluding older workers", []string{"digitally proficient", "tech-savvy"}},
		"recent graduate":   {"Age-coded term", []string{"entry-level candidate", "early career professional"}},
		"fresh graduate":    {"Age-coded term", []string{"entry-level candidate", "early career professional"}},
		"mature":            {"Age-coded term", []string{"experienced", "seasoned"}},
		"youthful":          {"Age-discriminatory term", []string{"dynamic", "vibrant"}},
	},
	core.LanguageSwedish: {
		"ung":              {"Åldersdiskriminerande term", []string{"energisk", "dynamisk"}},
		"ung och dynamisk": {"Åldersdiskriminerande fras", []string{"energisk", "motiverad"}},
		"ungt team":        {"Åldersdiskriminerande fras", []string{"samarbetsinriktat team", "dynamiskt team"}},
		"nyexaminerad":     {"Ålderskodat uttryck", []string{"nybörjare", "tidig karriär"}},
	},
	core.LanguageDanish: {
		"ung":            {"Aldersdiskriminerende term", []string{"energisk", "dynamisk"}},
		"ung og dynamisk": {"Aldersdiskriminerende udtryk", []string{"energisk", "motiveret"}},
		"ungt team":      {"Aldersdiskriminerende udtryk", []string{"samarbejdsorienteret team", "dynamisk team"}},
		"nyuddannet":     {"Alderskodet udtryk", []string{"entry-level", "tidlig karriere"}},
	},
	core.LanguageNorwegian: {
		"ung":            {"Aldersdiskriminerende term", []string{"energisk", "dynamisk"}},
		"ung og dynamisk": {"Aldersdiskriminerende uttrykk", []string{"energisk", "motivert"}},
		"ungt team":      {"Aldersdiskriminerende uttrykk", []string{"samarbeidsorientert team", "dynamisk team"}},
		"nyutdannet":     {"Alderskodet uttrykk", []string{"entry-level", "tidlig karriere"}},
	},
	core.LanguageGerman: {
		"jung":              {"Altersdiskriminierender Begriff", []string{"energisch", "dynamisch"}},
		"jung und dynamisch": {"Altersdiskriminierende Phrase", []string{"engagiert", "motiviert"}},
		"junges team":       {"Altersdiskriminierende Phrase", []string{"kooperatives Team", "dynamisches Team"}},
		"berufseinsteiger":  {"Alterskodierter Begriff", []string{"Einsteiger", "Berufsanfänger"}},
	},
}

var disabilityPools = map[core.Language]pool{
	core.LanguageEnglish: {
		"able-bodied":            {"Ableist term", []string{"physically capable", "meets physical requirements"}},
		"physically fit":         {"Can exclude people with disabilities", []string{"able to perform job duties"}},
		"stand for long periods": {"May exclude wheelchair users", []string{"work in various positions"}},
		"handicapped":            {"Outdated ableist term", []string{"person with disability", "disabled person"}},
		"suffering from":         {"Negative framing of disability", []string{"living with", "has"}},
		"confined to wheelchair": {"Negative framing", []string{"wheelchair user", "uses a wheelchair"}},
	},
	core.LanguageSwedish: {
		"fysiskt frisk":     {"Kan utesluta personer med funktionsnedsättning", []string{"kan utföra arbetsuppgifterna"}},
		"handikappad":       {"Föråldrad ableistisk term", []string{"person med funktionsnedsättning"}},
	},
	core.LanguageDanish: {
		"fysisk fit":  {"Kan udelukke personer med handicap", []string{"kan udføre arbejdsopgaverne"}},
		"handicappet": {"Forældet ableistisk term", []string{"person med handicap"}},
	},
	core.LanguageNorwegian: {
		"fysisk frisk": {"Kan ekskludere personer med funksjonshemming", []string{"kan utføre arbeidsoppgavene"}},
		"handikappet":  {"Utdatert ableistisk term", []string{"person med funksjonshemming"}},
	},
	core.LanguageGerman: {
		"körperlich fit": {"Kann Menschen mit Behinderung ausschließen", []string{"kann die Arbeitsaufgaben erfüllen"}},
		"lange stehen":   {"Kann Rollstuhlfahrer ausschließen", []string{"in verschiedenen Positionen arbeiten"}},
	},
}

var nationalityPools = map[core.Language]pool{
	core.LanguageEnglish: {
		"native speaker":        {"Excludes non-native speakers who may be fluent", []string{"fluent in", "proficient in"}},
		"mother tongue":         {"Excludes non-native speakers", []string{"fluent in", "native-level proficiency"}},
		"cultural fit":          {"Can mask discrimination based on background", []string{"team alignment", "values alignment"}},
		"local candidates only": {"Geographic discrimination", []string{"candidates in [location]", "able to work in [location]"}},
		"must be citizen":       {"May exclude qualified immigrants", []string{"authorized to work in [country]"}},
	},
	core.LanguageSwedish: {
		"modersmål":          {"Utesluter icke-modersmålstalare", []string{"flytande i", "utmärkta kunskaper i"}},
		"kulturell passform": {"Kan dölja diskriminering", []string{"teamanpassning", "värderingsanpassning"}},
	},
	core.LanguageDanish: {
		"modersmål":        {"Udelukker ikke-modersmålstalere", []string{"flydende i", "fremragende færdigheder i"}},
		"kulturel pasform": {"Kan skjule diskrimination", []string{"teamtilpasning", "værditilpasning"}},
	},
	core.LanguageNorwegian: {
		"morsmål":            {"Ekskluderer ikke-morsmålstalere", []string{"flytende i", "utmerkede ferdigheter i"}},
		"kulturell passform": {"Kan skjule diskriminering", []string{"teamtilpasning", "verditilpasning"}},
	},
	core.LanguageGerman: {
		"muttersprache":     {"Schließt Nicht-Muttersprachler aus", []string{"fließend in", "ausgezeichnete Kenntnisse in"}},
		"muttersprachler":   {"Schließt Nicht-Muttersprachler aus", []string{"fließend", "verhandlungssicher"}},
		"kulturelle passung": {"Kann Diskriminierung verbergen", []string{"Teamausrichtung", "Werteausrichtung"}},
	},
}

var familyPools = map[core.Language]pool{
	core.LanguageEnglish: {
		"family-oriented":       {"May imply preference for certain family status", []string{"work-life balance focused"}},
		"no family commitments": {"Discriminates against parents and caregivers", []string{"flexible availability"}},
	},
	core.LanguageSwedish: {
		"familjeorienterad":     {"Kan antyda preferens för viss familjestatus", []string{"fokus på balans mellan arbete och privatliv"}},
		"inga familjeåtaganden": {"Diskriminerar föräldrar och vårdgivare", []string{"flexibel tillgänglighet"}},
	},
	core.LanguageDanish: {
		"familieorienteret":         {"Kan antyde præference for bestemt familiestatus", []string{"fokus på work-life balance"}},
		"ingen familieforpligtelser": {"Diskriminerer forældre og omsorgspersoner", []string{"fleksibel tilgængelighed"}},
	},
	core.LanguageNorwegian: {
		"familieorientert":          {"Kan antyde preferanse for bestemt familiestatus", []string{"fokus på balanse mellom arbeid og privatliv"}},
		"ingen familieforpliktelser": {"Diskriminerer foreldre og omsorgspersoner", []string{"fleksibel tilgjengelighet"}},
	},
	core.LanguageGerman: {
		"familienorientiert":               {"Kann Präferenz für bestimmten Familienstatus implizieren", []string{"Work-Life-Balance orientiert"}},
		"keine familiären verpflichtungen": {"Diskriminiert Eltern und Pflegende", []string{"flexible Verfügbarkeit"}},
	},
}

var socioeconomicPools = map[core.Language]pool{
	core.LanguageEnglish: {
		"must have car":          {"Excludes those without vehicle access", []string{"reliable transportation", "able to commute"}},
		"own transport required": {"Excludes those without vehicle access", []string{"able to commute to office"}},
		"prestigious university": {"Educational elitism", []string{"relevant degree", "qualified education"}},
		"ivy league":             {"Educational elitism", []string{"accredited university"}},
		"unpaid internship":      {"Excludes those who cannot work without pay", []string{"paid internship", "compensated position"}},
	},
	core.LanguageSwedish: {
		"måste ha bil":             {"Utesluter de utan tillgång till fordon", []string{"pålitlig transport", "kan pendla"}},
		"prestigefyllt universitet": {"Utbildningselitism", []string{"relevant examen"}},
	},
	core.LanguageDanish: {
		"skal have bil":             {"Udelukker dem uden adgang til køretøj", []string{"pålidelig transport", "kan pendle"}},
		"prestigefyldt universitet": {"Uddannelseselitisme", []string{"relevant eksamen"}},
	},
	core.LanguageNorwegian: {
		"må ha bil":                {"Ekskluderer de uten tilgang til kjøretøy", []string{"pålitelig transport", "kan pendle"}},
		"prestisjefylt universitet": {"Utdanningselitisme", []string{"relevant grad"}},
	},
	core.LanguageGerman: {
		"eigenes fahrzeug erforderlich": {"Schließt Menschen ohne Fahrzeug aus", []string{"kann zum Büro pendeln"}},
		"renommierte universität":       {"Bildungselitismus", []string{"relevanter Abschluss"}},
	},
}

var locationPools = map[core.Language]pool{
	core.LanguageEnglish: {
		"must live in":               {"Geographic restriction", []string{"able to work from", "based in or willing to relocate to"}},
		"local candidates preferred": {"Geographic discrimination", []string{"candidates able to work in [location]"}},
		"no remote":                  {"May exclude candidates with disabilities or caregiving responsibilities", []string{"primarily office-based with flexibility"}},
	},
	core.LanguageSwedish: {
		"måste bo i": {"Geografisk begränsning", []string{"kan arbeta från", "baserad i eller villig att flytta till"}},
	},
	core.LanguageDanish: {
		"skal bo i": {"Geografisk begrænsning", []string{"kan arbejde fra", "baseret i eller villig til at flytte til"}},
	},
	core.LanguageNorwegian: {
		"må bo i": {"Geografisk begrensning", []string{"kan jobbe fra", "basert i eller villig til å flytte til"}},
	},
	core.LanguageGerman: {
		"muss wohnen in": {"Geografische Einschränkung", []string{"kann arbeiten von", "ansässig in oder umzugsbereit nach"}},
	},
}

var requirementsPools = map[core.Language]pool{
	core.LanguageEnglish: {
		"10+ years experience": {"May be unnecessarily exclusionary", []string{"extensive experience", "significant experience"}},
		"must have degree":     {"May exclude qualified candidates without formal education", []string{"relevant education or equivalent experience"}},
		"perfect english":      {"Unrealistic standard", []string{"excellent English", "strong English skills"}},
		"flawless":             {"Unrealistic standard", []string{"excellent", "strong"}},
	},
	core.LanguageSwedish: {
		"10+ års erfarenhet": {"Kan vara onödigt uteslutande", []string{"omfattande erfarenhet", "betydande erfarenhet"}},
		"perfekt svenska":    {"Orealistisk standard", []string{"utmärkt svenska", "starka svenskakunskaper"}},
	},
	core.LanguageDanish: {
		"10+ års erfaring": {"Kan være unødvendigt ekskluderende", []string{"omfattende erfaring", "betydelig erfaring"}},
		"perfekt dansk":    {"Urealistisk standard", []string{"fremragende dansk", "stærke danskkundskaber"}},
	},
	core.LanguageNorwegian: {
		"10+ års erfaring": {"Kan være unødvendig ekskluderende", []string{"omfattende erfaring", "betydelig erfaring"}},
		"perfekt norsk":    {"Urealistisk standard", []string{"utmerket norsk", "sterke norskkunnskaper"}},
	},
	core.LanguageGerman: {
		"10+ jahre erfahrung": {"Kann unnötig ausschließend sein", []string{"umfangreiche Erfahrung", "erhebliche Erfahrung"}},
		"perfektes deutsch":   {"Unrealistischer Standard", []string{"ausgezeichnetes Deutsch", "sehr gute Deutschkenntnisse"}},
	},
}

// germanTitlePool lists German job titles that need a gender notation.
var germanTitlePool = pool{
	"geschäftsführer": {"Male-only job title", []string{"Geschäftsführer (m/w/d)", "Geschäftsführung"}},
	"entwickler":      {"Male-only job title", []string{"Entwickler (m/w/d)", "Entwickler:in"}},
	"ingenieur":       {"Male-only job title", []string{"Ingenieur (m/w/d)", "Ingenieur:in"}},
	"berater":         {"Male-only job title", []string{"Berater (m/w/d)", "Berater:in"}},
	"projektleiter":   {"Male-only job title", []string{"Projektleiter (m/w/d)", "Projektleitung"}},
	"teamleiter":      {"Male-only job title", []string{"Teamleiter (m/w/d)", "Teamleitung"}},
	"sachbearbeiter":  {"Male-only job title", []string{"Sachbearbeiter (m/w/d)", "Sachbearbeitung"}},
	"verkäufer":       {"Male-only job title", []string{"Verkäufer (m/w/d)", "Verkäufer:in"}},
	"kaufmann":        {"Male-only job title", []string{"Kaufmann/-frau", "Kaufleute"}},
}
