package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stokvelmanager/whatsapp-bot/internal/domain"
	"github.com/stokvelmanager/whatsapp-bot/internal/platform/metrics"
	"github.com/stokvelmanager/whatsapp-bot/internal/ports/out/clock"
	contribrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/contribrepo"
	grouprepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/grouprepo"
	meetingrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/meetingrepo"
	memberrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/memberrepo"
	payoutrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/payoutrepo"
	userrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/userrepo"
)

const (
	replyNotLinkedBalance = "You're not linked to any stokvel group yet. Ask your chairperson to add your number."
	replyNotLinked        = "You're not linked to any stokvel group yet."
	replyGroupLoadFailed  = "Could not load group data."
	replyNoMembership     = "Could not find your membership record."
	replyRemindDenied     = "⚠️ Only the chairperson or treasurer can send reminders."

	replyHelp = "🤖 *StokvelManager Bot Commands*\n\n" +
		"📊 *balance* — Group balance & who's paid\n" +
		"👤 *my balance* — Your contribution history\n" +
		"💰 *next payout* — Who's next in rotation\n" +
		"📅 *next meeting* — Next scheduled meeting\n" +
		"🔔 *remind* — Send payment reminder (admin)\n" +
		"❓ *help* — Show this message"
)

// myBalanceLimit caps the contribution history shown per member.
const myBalanceLimit = 6

// Service resolves inbound commands to reply text. Route never returns an
// error; unexpected failures are logged and degrade to a fixed reply.
type Service struct {
	users    userrepoport.Repository
	groups   grouprepoport.Repository
	members  memberrepoport.Repository
	contribs contribrepoport.Repository
	meetings meetingrepoport.Repository
	payouts  payoutrepoport.Repository

	clk clock.Clock
	loc *time.Location
	log *slog.Logger
}

func NewService(
	users userrepoport.Repository,
	groups grouprepoport.Repository,
	members memberrepoport.Repository,
	contribs contribrepoport.Repository,
	meetings meetingrepoport.Repository,
	payouts payoutrepoport.Repository,
	clk clock.Clock,
	loc *time.Location,
	log *slog.Logger,
) *Service {
	return &Service{
		users:    users,
		groups:   groups,
		members:  members,
		contribs: contribs,
		meetings: meetings,
		payouts:  payouts,
		clk:      clk,
		loc:      loc,
		log:      log,
	}
}

// Route dispatches one parsed command and returns the reply text.
// Phrase commands are matched against the full normalized text before the
// single-token verbs, so "my balance" never falls through to "balance"'s
// handler via its first word.
func (s *Service) Route(ctx context.Context, cmd ParsedCommand) string {
	name, reply := s.dispatch(ctx, cmd)
	metrics.CommandsHandled.WithLabelValues(name).Inc()
	return reply
}

func (s *Service) dispatch(ctx context.Context, cmd ParsedCommand) (string, string) {
	switch cmd.Normalized() {
	case "my balance":
		return "my_balance", s.handleMyBalance(ctx, cmd)
	case "next payout":
		return "next_payout", s.handleNextPayout(ctx, cmd)
	case "next meeting":
		return "next_meeting", s.handleNextMeeting(ctx, cmd)
	}

	switch cmd.Command {
	case "balance":
		return "balance", s.handleBalance(ctx, cmd)
	case "remind":
		return "remind", s.handleRemind(ctx, cmd)
	case "help":
		return "help", replyHelp
	default:
		return "unknown", replyHelp
	}
}

// resolveGroup maps a sender phone to their first associated group. The
// second return value is a ready reply when resolution fails.
func (s *Service) resolveGroup(ctx context.Context, phone, notLinkedReply string) (domain.Group, string) {
	user, err := s.users.GetByPhone(ctx, phone)
	if errors.Is(err, userrepoport.ErrNotFound) {
		return domain.Group{}, notLinkedReply
	}
	if err != nil {
		s.log.Error("resolve user failed", "phone", phone, "err", err)
		return domain.Group{}, replyGroupLoadFailed
	}
	if len(user.GroupIDs) == 0 {
		return domain.Group{}, notLinkedReply
	}

	group, err := s.groups.GetByID(ctx, user.GroupIDs[0])
	if errors.Is(err, grouprepoport.ErrNotFound) {
		return domain.Group{}, notLinkedReply
	}
	if err != nil {
		s.log.Error("load group failed", "group_id", user.GroupIDs[0], "err", err)
		return domain.Group{}, replyGroupLoadFailed
	}
	return group, ""
}

func (s *Service) handleBalance(ctx context.Context, cmd ParsedCommand) string {
	group, failReply := s.resolveGroup(ctx, cmd.SenderPhone, replyNotLinkedBalance)
	if failReply != "" {
		return failReply
	}

	now := s.clk.Now().In(s.loc)
	paid, err := s.contribs.CountPaidSince(ctx, group.ID, domain.StartOfMonth(now))
	if err != nil {
		s.log.Error("count paid contributions failed", "group_id", group.ID, "err", err)
		return replyGroupLoadFailed
	}

	return fmt.Sprintf("📊 *%s*\nBalance: %s\n%d/%d paid for %s\nContribution: %s/month",
		group.Name,
		domain.FormatRand(group.TotalCollected),
		paid, group.MemberCount, domain.MonthName(now),
		domain.FormatRand(group.ContributionAmount))
}

func (s *Service) handleMyBalance(ctx context.Context, cmd ParsedCommand) string {
	group, failReply := s.resolveGroup(ctx, cmd.SenderPhone, replyNotLinked)
	if failReply != "" {
		return failReply
	}

	member, err := s.members.GetByPhone(ctx, group.ID, cmd.SenderPhone)
	if errors.Is(err, memberrepoport.ErrNotFound) {
		return replyNoMembership
	}
	if err != nil {
		s.log.Error("load member failed", "group_id", group.ID, "err", err)
		return replyGroupLoadFailed
	}

	history, err := s.contribs.ListRecentByMember(ctx, group.ID, member.ID, myBalanceLimit)
	if err != nil {
		s.log.Error("list contributions failed", "group_id", group.ID, "member_id", member.ID, "err", err)
		return replyGroupLoadFailed
	}
	if len(history) == 0 {
		return fmt.Sprintf("📊 *%s*\nNo contributions recorded yet.", group.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Your balance — %s*\n", group.Name)
	for i, c := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		month := "Pending"
		if c.Status == domain.ContributionPaid {
			month = domain.FormatPaidMonth(c.PaidDate)
		}
		fmt.Fprintf(&b, "%s %s — %s", statusGlyph(c.Status), domain.FormatRand(c.Amount), month)
	}
	return b.String()
}

func statusGlyph(s domain.ContributionStatus) string {
	switch s {
	case domain.ContributionPaid:
		return "✅"
	case domain.ContributionLate:
		return "❌"
	default:
		return "⏳"
	}
}

func (s *Service) handleNextPayout(ctx context.Context, cmd ParsedCommand) string {
	group, failReply := s.resolveGroup(ctx, cmd.SenderPhone, replyNotLinked)
	if failReply != "" {
		return failReply
	}

	payout, err := s.payouts.NextScheduled(ctx, group.ID)
	if errors.Is(err, payoutrepoport.ErrNotFound) {
		return fmt.Sprintf("💰 *%s*\nNo upcoming payouts scheduled.", group.Name)
	}
	if err != nil {
		s.log.Error("load next payout failed", "group_id", group.ID, "err", err)
		return replyGroupLoadFailed
	}

	date := "TBD"
	if !payout.PayoutDate.IsZero() {
		date = domain.FormatPayoutDate(payout.PayoutDate.In(s.loc))
	}
	return fmt.Sprintf("💰 *Next Payout — %s*\nRecipient: %s\nAmount: %s\nDate: %s",
		group.Name, payout.RecipientName, domain.FormatRand(payout.Amount), date)
}

func (s *Service) handleNextMeeting(ctx context.Context, cmd ParsedCommand) string {
	group, failReply := s.resolveGroup(ctx, cmd.SenderPhone, replyNotLinked)
	if failReply != "" {
		return failReply
	}

	meeting, err := s.meetings.NextAfter(ctx, group.ID, s.clk.Now())
	if errors.Is(err, meetingrepoport.ErrNotFound) {
		return fmt.Sprintf("📅 *%s*\nNo upcoming meetings scheduled.", group.Name)
	}
	if err != nil {
		s.log.Error("load next meeting failed", "group_id", group.ID, "err", err)
		return replyGroupLoadFailed
	}

	return fmt.Sprintf("📅 *Next Meeting — %s*\n%s\nDate: %s\nLocation: %s",
		group.Name,
		meetingTitle(meeting),
		domain.FormatMeetingDate(meeting.Date.In(s.loc)),
		meetingLocation(meeting))
}

func meetingTitle(m domain.Meeting) string {
	if m.Title == "" {
		return "Monthly Meeting"
	}
	return m.Title
}

func meetingLocation(m domain.Meeting) string {
	switch {
	case m.LocationName != "":
		return m.LocationName
	case m.VirtualLink != "":
		return m.VirtualLink
	default:
		return "TBD"
	}
}

func (s *Service) handleRemind(ctx context.Context, cmd ParsedCommand) string {
	group, failReply := s.resolveGroup(ctx, cmd.SenderPhone, replyNotLinked)
	if failReply != "" {
		return failReply
	}

	member, err := s.members.GetByPhone(ctx, group.ID, cmd.SenderPhone)
	if errors.Is(err, memberrepoport.ErrNotFound) {
		return replyNoMembership
	}
	if err != nil {
		s.log.Error("load member failed", "group_id", group.ID, "err", err)
		return replyGroupLoadFailed
	}
	if !member.CanSendReminders() {
		return replyRemindDenied
	}

	return fmt.Sprintf("🔔 *Payment Reminder — %s*\n\nYour %s contribution is due. Please pay as soon as possible and send proof of payment to the treasurer.",
		group.Name, domain.FormatRand(group.ContributionAmount))
}
