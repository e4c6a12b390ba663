package scheduling

import (
	"context"
	"strconv"

	"github.com/nikmy/interviewme/internal/notify"
	"github.com/nikmy/interviewme/pkg/errors"
)

const FeedbackQuestions = 11

// SubmitFeedback mails the interviewer's answers to the interviewee.
// answers[k] answers question k+1, missing answers are sent empty.
func (s *Service) SubmitFeedback(ctx context.Context, actorID, interviewID string, answers []string) error {
	if len(answers) > FeedbackQuestions {
		return invalid(errors.Error("got %d answers, expected at most %d", len(answers), FeedbackQuestions))
	}

	interview, found, err := s.interviews.Get(ctx, interviewID)
	if err != nil {
		return persistence(errors.WrapFailf(err, "get interview %s", interviewID))
	}
	if !found {
		return errors.Mark(errors.Error("interview %s does not exist", interviewID), ErrNotFound)
	}

	if interview.InterviewerID != actorID {
		return errors.Mark(
			errors.Error("%s is not the interviewer of %s", actorID, interviewID),
			ErrUnauthorized,
		)
	}

	interviewee, err := s.recipient(ctx, interview.IntervieweeID)
	if err != nil {
		return persistence(err)
	}

	interviewer, err := s.recipient(ctx, interview.InterviewerID)
	if err != nil {
		return persistence(err)
	}

	subs := map[string]string{
		"formatted_date":         interview.When.Start.In(interviewee.location).Format(emailDateLayout),
		"interviewer_first_name": interviewer.FirstName,
		"interviewee_first_name": interviewee.FirstName,
	}
	for k := range FeedbackQuestions {
		answer := ""
		if k < len(answers) {
			answer = answers[k]
		}
		subs["question_"+strconv.Itoa(k+1)] = answer
	}

	err = s.notifier.Send(ctx, interviewee.Recipient, SubjectFeedback, notify.TemplateFeedbackToInterviewee, subs)
	if err != nil {
		return errors.Mark(errors.WrapFail(err, "send feedback to interviewee"), ErrNotification)
	}

	s.log.Infof("feedback for %s delivered to %s", interviewID, interview.IntervieweeID)
	return nil
}
