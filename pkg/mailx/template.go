package mailx

import (
	"fmt"
	"html"
)

func inviteSubject(email InviteEmail) string {
	return fmt.Sprintf("You've been invited to join %s", email.OrganizationName)
}

func inviteHTMLBody(email InviteEmail) string {
	org := html.EscapeString(email.OrganizationName)
	role := html.EscapeString(email.Role)
	link := html.EscapeString(email.AcceptURL)
	expires := email.ExpiresAt.UTC().Format("2 January 2006 15:04 MST")

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1>Join %s</h1>
		<p>You have been invited to join <strong>%s</strong> as a <strong>%s</strong>.</p>
		<p style="text-align: center;">
			<a href="%s" style="display: inline-block; padding: 12px 30px; background-color: #2d6cdf; color: white; text-decoration: none; border-radius: 5px;">Accept Invitation</a>
		</p>
		<p>Or copy and paste this link into your browser:</p>
		<p style="word-break: break-all; font-size: 12px; color: #666;">%s</p>
		<p><strong>This invitation expires on %s.</strong></p>
		<p>If you weren't expecting this invitation, you can safely ignore this email.</p>
		<p style="font-size: 12px; color: #666;">This is an automated email. Please do not reply.</p>
	</div>
</body>
</html>
`, org, org, role, link, link, expires)
}

func inviteTextBody(email InviteEmail) string {
	expires := email.ExpiresAt.UTC().Format("2 January 2006 15:04 MST")

	return fmt.Sprintf(`You have been invited to join %s as a %s.

Accept the invitation here:
%s

This invitation expires on %s.

If you weren't expecting this invitation, you can safely ignore this email.

---
This is an automated email. Please do not reply.
`, email.OrganizationName, email.Role, email.AcceptURL, expires)
}
