// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/vincentb/aurelie/ent/achievement"
	"github.com/vincentb/aurelie/ent/engagementstate"
	"github.com/vincentb/aurelie/ent/errorpattern"
	"github.com/vincentb/aurelie/ent/reviewitem"
	"github.com/vincentb/aurelie/ent/schema"
	"github.com/vincentb/aurelie/ent/sessionresult"
	"github.com/vincentb/aurelie/ent/topicmastery"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescLearnerID is the schema descriptor for learner_id field.
	achievementDescLearnerID := achievementFields[0].Descriptor()
	// achievement.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	achievement.LearnerIDValidator = achievementDescLearnerID.Validators[0].(func(string) error)
	// achievementDescKey is the schema descriptor for key field.
	achievementDescKey := achievementFields[1].Descriptor()
	// achievement.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	achievement.KeyValidator = achievementDescKey.Validators[0].(func(string) error)
	engagementstateFields := schema.EngagementState{}.Fields()
	_ = engagementstateFields
	// engagementstateDescLearnerID is the schema descriptor for learner_id field.
	engagementstateDescLearnerID := engagementstateFields[0].Descriptor()
	// engagementstate.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	engagementstate.LearnerIDValidator = engagementstateDescLearnerID.Validators[0].(func(string) error)
	// engagementstateDescCurrentStreak is the schema descriptor for current_streak field.
	engagementstateDescCurrentStreak := engagementstateFields[1].Descriptor()
	// engagementstate.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	engagementstate.DefaultCurrentStreak = engagementstateDescCurrentStreak.Default.(int)
	// engagementstateDescLongestStreak is the schema descriptor for longest_streak field.
	engagementstateDescLongestStreak := engagementstateFields[2].Descriptor()
	// engagementstate.DefaultLongestStreak holds the default value on creation for the longest_streak field.
	engagementstate.DefaultLongestStreak = engagementstateDescLongestStreak.Default.(int)
	// engagementstateDescFreezeAvailable is the schema descriptor for freeze_available field.
	engagementstateDescFreezeAvailable := engagementstateFields[4].Descriptor()
	// engagementstate.DefaultFreezeAvailable holds the default value on creation for the freeze_available field.
	engagementstate.DefaultFreezeAvailable = engagementstateDescFreezeAvailable.Default.(bool)
	// engagementstateDescTotalXp is the schema descriptor for total_xp field.
	engagementstateDescTotalXp := engagementstateFields[6].Descriptor()
	// engagementstate.DefaultTotalXp holds the default value on creation for the total_xp field.
	engagementstate.DefaultTotalXp = engagementstateDescTotalXp.Default.(int)
	errorpatternFields := schema.ErrorPattern{}.Fields()
	_ = errorpatternFields
	// errorpatternDescLearnerID is the schema descriptor for learner_id field.
	errorpatternDescLearnerID := errorpatternFields[0].Descriptor()
	// errorpattern.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	errorpattern.LearnerIDValidator = errorpatternDescLearnerID.Validators[0].(func(string) error)
	// errorpatternDescPattern is the schema descriptor for pattern field.
	errorpatternDescPattern := errorpatternFields[1].Descriptor()
	// errorpattern.PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	errorpattern.PatternValidator = errorpatternDescPattern.Validators[0].(func(string) error)
	// errorpatternDescOccurrences is the schema descriptor for occurrences field.
	errorpatternDescOccurrences := errorpatternFields[5].Descriptor()
	// errorpattern.DefaultOccurrences holds the default value on creation for the occurrences field.
	errorpattern.DefaultOccurrences = errorpatternDescOccurrences.Default.(int)
	// errorpatternDescStatus is the schema descriptor for status field.
	errorpatternDescStatus := errorpatternFields[6].Descriptor()
	// errorpattern.DefaultStatus holds the default value on creation for the status field.
	errorpattern.DefaultStatus = errorpatternDescStatus.Default.(string)
	reviewitemFields := schema.ReviewItem{}.Fields()
	_ = reviewitemFields
	// reviewitemDescLearnerID is the schema descriptor for learner_id field.
	reviewitemDescLearnerID := reviewitemFields[0].Descriptor()
	// reviewitem.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewitem.LearnerIDValidator = reviewitemDescLearnerID.Validators[0].(func(string) error)
	// reviewitemDescKey is the schema descriptor for key field.
	reviewitemDescKey := reviewitemFields[1].Descriptor()
	// reviewitem.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	reviewitem.KeyValidator = reviewitemDescKey.Validators[0].(func(string) error)
	// reviewitemDescKind is the schema descriptor for kind field.
	reviewitemDescKind := reviewitemFields[3].Descriptor()
	// reviewitem.DefaultKind holds the default value on creation for the kind field.
	reviewitem.DefaultKind = reviewitemDescKind.Default.(string)
	// reviewitemDescStatus is the schema descriptor for status field.
	reviewitemDescStatus := reviewitemFields[4].Descriptor()
	// reviewitem.DefaultStatus holds the default value on creation for the status field.
	reviewitem.DefaultStatus = reviewitemDescStatus.Default.(string)
	// reviewitemDescIntervalDays is the schema descriptor for interval_days field.
	reviewitemDescIntervalDays := reviewitemFields[5].Descriptor()
	// reviewitem.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewitem.DefaultIntervalDays = reviewitemDescIntervalDays.Default.(int)
	// reviewitemDescTopStreak is the schema descriptor for top_streak field.
	reviewitemDescTopStreak := reviewitemFields[7].Descriptor()
	// reviewitem.DefaultTopStreak holds the default value on creation for the top_streak field.
	reviewitem.DefaultTopStreak = reviewitemDescTopStreak.Default.(int)
	sessionresultFields := schema.SessionResult{}.Fields()
	_ = sessionresultFields
	// sessionresultDescLearnerID is the schema descriptor for learner_id field.
	sessionresultDescLearnerID := sessionresultFields[0].Descriptor()
	// sessionresult.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionresult.LearnerIDValidator = sessionresultDescLearnerID.Validators[0].(func(string) error)
	// sessionresultDescSessionID is the schema descriptor for session_id field.
	sessionresultDescSessionID := sessionresultFields[1].Descriptor()
	// sessionresult.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionresult.SessionIDValidator = sessionresultDescSessionID.Validators[0].(func(string) error)
	topicmasteryFields := schema.TopicMastery{}.Fields()
	_ = topicmasteryFields
	// topicmasteryDescLearnerID is the schema descriptor for learner_id field.
	topicmasteryDescLearnerID := topicmasteryFields[0].Descriptor()
	// topicmastery.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	topicmastery.LearnerIDValidator = topicmasteryDescLearnerID.Validators[0].(func(string) error)
	// topicmasteryDescTopicKey is the schema descriptor for topic_key field.
	topicmasteryDescTopicKey := topicmasteryFields[1].Descriptor()
	// topicmastery.TopicKeyValidator is a validator for the "topic_key" field. It is called by the builders before save.
	topicmastery.TopicKeyValidator = topicmasteryDescTopicKey.Validators[0].(func(string) error)
	// topicmasteryDescTotalAttempts is the schema descriptor for total_attempts field.
	topicmasteryDescTotalAttempts := topicmasteryFields[2].Descriptor()
	// topicmastery.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	topicmastery.DefaultTotalAttempts = topicmasteryDescTotalAttempts.Default.(int)
	// topicmastery.TotalAttemptsValidator is a validator for the "total_attempts" field. It is called by the builders before save.
	topicmastery.TotalAttemptsValidator = topicmasteryDescTotalAttempts.Validators[0].(func(int) error)
	// topicmasteryDescCorrectAttempts is the schema descriptor for correct_attempts field.
	topicmasteryDescCorrectAttempts := topicmasteryFields[3].Descriptor()
	// topicmastery.DefaultCorrectAttempts holds the default value on creation for the correct_attempts field.
	topicmastery.DefaultCorrectAttempts = topicmasteryDescCorrectAttempts.Default.(int)
	// topicmastery.CorrectAttemptsValidator is a validator for the "correct_attempts" field. It is called by the builders before save.
	topicmastery.CorrectAttemptsValidator = topicmasteryDescCorrectAttempts.Validators[0].(func(int) error)
}
