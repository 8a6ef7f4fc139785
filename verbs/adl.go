package verbs

import "github.com/jonathanwoahn/xapi-types/misc/langmap"

// Verb IRIs from the ADL vocabulary.
//
// See: http://adlnet.gov/expapi/verbs/
const (
	IRIAnswered    = "http://adlnet.gov/expapi/verbs/answered"
	IRIAttempted   = "http://adlnet.gov/expapi/verbs/attempted"
	IRICompleted   = "http://adlnet.gov/expapi/verbs/completed"
	IRIExperienced = "http://adlnet.gov/expapi/verbs/experienced"
	IRIFailed      = "http://adlnet.gov/expapi/verbs/failed"
	IRIInitialized = "http://adlnet.gov/expapi/verbs/initialized"
	IRILaunched    = "http://adlnet.gov/expapi/verbs/launched"
	IRIPassed      = "http://adlnet.gov/expapi/verbs/passed"
	IRITerminated  = "http://adlnet.gov/expapi/verbs/terminated"

	// Reserved. A Statement with this verb voids the StatementRef in its object.
	IRIVoided = "http://adlnet.gov/expapi/verbs/voided"
)

func adl(iri string, enUS string) Verb {
	return Verb{Id: iri, Display: langmap.New(enUS)}
}

// Each call returns a new Verb, so callers may add translations to Display.

func Answered() Verb    { return adl(IRIAnswered, "answered") }
func Attempted() Verb   { return adl(IRIAttempted, "attempted") }
func Completed() Verb   { return adl(IRICompleted, "completed") }
func Experienced() Verb { return adl(IRIExperienced, "experienced") }
func Failed() Verb      { return adl(IRIFailed, "failed") }
func Initialized() Verb { return adl(IRIInitialized, "initialized") }
func Launched() Verb    { return adl(IRILaunched, "launched") }
func Passed() Verb      { return adl(IRIPassed, "passed") }
func Terminated() Verb  { return adl(IRITerminated, "terminated") }
func Voided() Verb      { return adl(IRIVoided, "voided") }
