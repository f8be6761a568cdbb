package email

type verificationData struct {
	Username string
	OTP      int
	AppName  string
}

type passwordResetData struct {
	Username  string
	ResetLink string
	AppName   string
}

const emailTemplates = `
{{define "verification"}}
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Verify Your Registration</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            background-color: #ffffff;
            border-radius: 8px;
            padding: 40px;
        }
        .otp {
            font-size: 36px;
            font-weight: bold;
            letter-spacing: 8px;
            text-align: center;
            color: #1a1a1a;
            margin: 30px 0;
            font-family: 'Courier New', monospace;
        }
        .footer {
            margin-top: 40px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            color: #999;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Hello {{.Username}},</h1>
        <p>
            Thank you for registering with us. Please use the following
            One-Time Password (OTP) to complete your registration:
        </p>
        <div class="otp">{{.OTP}}</div>
        <p>This OTP is valid for the next 1 minute.</p>
        <p>
            If you did not initiate this registration process, please do not
            share this OTP with anyone and ignore this email.
        </p>
        <div class="footer">
            <p>&copy; {{.AppName}}</p>
        </div>
    </div>
</body>
</html>
{{end}}

{{define "password_reset"}}
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Reset Your Password</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            background-color: #ffffff;
            border-radius: 8px;
            padding: 40px;
        }
        .button {
            display: inline-block;
            background-color: #1a1a1a;
            color: #ffffff !important;
            text-decoration: none;
            padding: 14px 32px;
            border-radius: 6px;
            font-weight: 600;
        }
        .link-text {
            background-color: #f3f4f6;
            border-radius: 6px;
            padding: 15px;
            margin: 20px 0;
            word-break: break-all;
            font-size: 14px;
            color: #666;
        }
        .footer {
            margin-top: 40px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            color: #999;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Hello {{.Username}},</h1>
        <p>
            We received a request to reset the password for your account.
            Click the button below to choose a new password:
        </p>
        <p style="text-align: center; margin: 30px 0;">
            <a href="{{.ResetLink}}" class="button">Reset Password</a>
        </p>
        <p>Or copy this link into your browser:</p>
        <div class="link-text">{{.ResetLink}}</div>
        <p>
            This link expires shortly. If you did not request a password
            reset, you can safely ignore this email.
        </p>
        <div class="footer">
            <p>&copy; {{.AppName}}</p>
        </div>
    </div>
</body>
</html>
{{end}}
`
