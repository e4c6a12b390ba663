package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/interviewme/internal/repo/models"
	"github.com/nikmy/interviewme/internal/scheduling"
	"github.com/nikmy/interviewme/pkg/errors"
)

const feedbackRedirect = "/scheduled-interviews.html"

type scheduleRequest struct {
	Company      string `json:"company"`
	Job          string `json:"job"`
	UTCStartTime string `json:"utcStartTime"`
}

type availabilityRequest struct {
	UTCStartTime string `json:"utcStartTime"`
	UTCEndTime   string `json:"utcEndTime"`
}

type profileRequest struct {
	FirstName string `json:"firstName"`
	Company   string `json:"company"`
	Job       string `json:"job"`
	TimeZone  string `json:"timeZone"`
	Telegram  int64  `json:"telegram"`
}

func (s *server) handleSchedule(c *fiber.Ctx) error {
	var req scheduleRequest
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse scheduling request"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	start, err := parseInstant(req.UTCStartTime)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	caller := s.caller(c)
	interview, err := s.scheduler.Schedule(c.UserContext(), scheduling.Request{
		IntervieweeID:    caller.ID,
		IntervieweeEmail: caller.Email,
		Company:          req.Company,
		Job:              req.Job,
		Start:            start,
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(map[string]string{"id": interview.ID})
}

func (s *server) handleList(c *fiber.Ctx) error {
	loc := time.UTC
	if tz := c.Query("timeZone", ""); tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return s.sendError(c, http.StatusBadRequest, "unknown time zone "+strconv.Quote(tz))
		}
	}

	now := s.now()
	if userTime := c.Query("userTime", ""); userTime != "" {
		var err error
		now, err = parseInstant(userTime)
		if err != nil {
			return s.sendError(c, http.StatusBadRequest, err.Error())
		}
	}

	views, err := s.scheduler.ListForPerson(c.UserContext(), s.caller(c).ID, loc, now)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(views)
}

func (s *server) handleCancel(c *fiber.Ctx) error {
	id, err := s.getQueryOrErr(c, "id")
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	err = s.scheduler.Cancel(c.UserContext(), s.caller(c).ID, id)
	if err != nil {
		return s.fail(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

func (s *server) handleFeedback(c *fiber.Ctx) error {
	id, err := s.getQueryOrErr(c, "interviewId")
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	answers := make([]string, scheduling.FeedbackQuestions)
	for k := range answers {
		answers[k] = c.FormValue("question" + strconv.Itoa(k+1))
	}

	err = s.scheduler.SubmitFeedback(c.UserContext(), s.caller(c).ID, id, answers)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Redirect(feedbackRedirect, http.StatusSeeOther)
}

func (s *server) handleDeclareAvailability(c *fiber.Ctx) error {
	var req availabilityRequest
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse availability request"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	start, err := parseInstant(req.UTCStartTime)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	end, err := parseInstant(req.UTCEndTime)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	id, err := s.scheduler.DeclareAvailability(c.UserContext(), s.caller(c).ID, models.TimeRange{Start: start, End: end})
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(map[string]string{"id": id})
}

func (s *server) handleSaveProfile(c *fiber.Ctx) error {
	var req profileRequest
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse profile"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	caller := s.caller(c)
	err = s.scheduler.SaveProfile(c.UserContext(), models.Person{
		ID:        caller.ID,
		FirstName: req.FirstName,
		Email:     caller.Email,
		Company:   req.Company,
		Job:       req.Job,
		TimeZone:  req.TimeZone,
		Telegram:  req.Telegram,
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

func (s *server) handleShadowCandidates(c *fiber.Ctx) error {
	from, err := parseInstant(c.Query("from", ""))
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	to, err := parseInstant(c.Query("to", ""))
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	position := models.Job{Company: c.Query("company", ""), Title: c.Query("job", "")}
	interviews, err := s.scheduler.ShadowCandidates(c.UserContext(), position, from, to)
	if err != nil {
		return s.fail(c, err)
	}

	if interviews == nil {
		interviews = []models.Interview{}
	}
	return c.Status(http.StatusOK).JSON(interviews)
}

func (s *server) handleAttachShadow(c *fiber.Ctx) error {
	id, err := s.getQueryOrErr(c, "id")
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	interview, err := s.scheduler.AttachShadow(c.UserContext(), s.caller(c).ID, id)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(interview)
}

func parseInstant(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.Error("instant is empty")
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.WrapFailf(err, "parse instant %q", value)
	}

	return t.UTC(), nil
}
